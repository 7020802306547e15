package trailmap

// DefaultRadius is the hotspot radius, in image pixels, of the built-in map.
const DefaultRadius = 15

// Itinerary returns the Rainforest Wild Asia hotspots in visiting order.
func Itinerary() []Hotspot {
	return []Hotspot{
		{Region{"Entrance Gorge", Point{588, 804}},
			"9.00am: Enter the Entrance Gorge as you are welcomed by the waterfall. Enjoy the serene habitat of the Asian arowana and Southern river terrapin at the Entrance Pond."},
		{Region{"Log Crossing Trek", Point{503, 760}},
			"9.15am: Venture off the beaten path by heading onto the Log Crossing Trek, where you can cross rocks and fallen logs that lie over a flowing stream."},
		{Region{"Karst Loop Trek", Point{352, 788}},
			"9.30am: Continue to the Karst Loop Trek where you may spot Francois' langurs on their karst island and harnessed adventurers on the Wild Apex Adventure. Catch the Ranger Talk happening daily at 9.45am at The Karsts to learn more about the Francois' langurs from our keepers!"},
		{Region{"The Karsts (Ranger Talk)", Point{244, 815}},
			"9.45am: Ranger Talk about Francois' langurs at The Karsts."},
		{Region{"Forest Floor Trek", Point{421, 569}},
			"10.15am: Get closer to the animals by heading on the Forest Floor Trek, where you may even encounter a prowling Malayan tiger!"},
		{Region{"Rock Cascade", Point{585, 446}},
			"10.45am: Spot the Babirusas and Red dholes at the Rock Cascade from the elevated walkway. \nHead to the Tiger Waterfall for the Ranger Talk happening daily at 11.00am."},
		{Region{"The Canopy", Point{853, 255}},
			"11.15am: Explore The Canopy, where langurs and deer thrive in this habitat."},
		{Region{"Langur Walking Nets", Point{1017, 191}},
			"11.15am: Step onto the Langur Walking Nets as you try to spot the Philippine spotted deer below."},
		{Region{"Canopy Jump", Point{729, 428}},
			"1.00pm: Continue your adventure by stepping off a towering 13m or 20m platform at Canopy Jump! \nAdditional charges apply for Canopy Jump"},
		{Region{"Upper Stream Trek", Point{740, 588}},
			"1.30pm: Venture down the Upper Stream Trek to the Malayan sun bear habitat."},
		{Region{"Lower Stream Trek", Point{780, 699}},
			"1.30pm: Cross the various bridges and under fallen logs on the Lower Stream Trek and visit the Watering Hole Cafe for a quick respite as you enjoy the view of the Tapir pool."},
		{Region{"The Cavern", Point{960, 774}},
			"2.00pm: Explore The Cavern, inspired by the Mulu caves in Sarawak, Malaysia, where you can find Cave racer snakes and Asian forest scorpions! End your cave exploration with a stunning photo at The Oculus!"},
	}
}

// DefaultMap builds the Map for the built-in itinerary.
func DefaultMap() (*Map, error) {
	return FromHotspots(Itinerary(), DefaultRadius)
}
