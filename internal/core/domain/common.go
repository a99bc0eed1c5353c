package domain

// Common16x9 returns the conventional 16:9 resolutions in ascending height
// order.
func Common16x9() []Resolution {
	return []Resolution{
		R360p(SixteenNine),
		R720p(SixteenNine),
		R1080p(SixteenNine),
		R1440p(SixteenNine),
	}
}

// Common4x3 returns the conventional 4:3 resolutions in ascending height
// order. 1080p is absent because a 4:3 1080p has no conventional definition.
func Common4x3() []Resolution {
	return []Resolution{
		R360p(FourThree),
		R480p(FourThree),
		R720p(FourThree),
		R1440p(FourThree),
	}
}
