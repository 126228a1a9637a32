package catalog

import "mcp-nutriserve/internal/models"

func defaultCustomers() []models.Customer {
	return []models.Customer{
		{
			ID:   "customer_a",
			Name: "Rohan",
			Order: models.Order{
				Description:   "I'm looking for a balanced, regular-sized meal. I'd love some Chana Masala if you have it.",
				PlateSize:     models.PlateRegular,
				DietaryMode:   models.DietNone,
				RequiredItems: []string{"chana_masala"},
			},
			Dialogue: models.Dialogue{
				Intro:    "Hello! What's on the menu today?",
				Positive: "Wow, this is perfect! Exactly what I needed. Delicious and balanced. 10/10!",
				Neutral:  "Thanks, this is pretty good. A few tweaks and it would be perfect.",
				Negative: "Hmm, this isn't quite what I had in mind. It's a bit off from my request.",
			},
		},
		{
			ID:   "customer_b",
			Name: "Priya",
			Order: models.Order{
				Description:   "I need a hearty, high-protein meal. How about some Bhindi Masala? I'm trying to watch my carbs.",
				PlateSize:     models.PlateHearty,
				DietaryMode:   models.DietLowCarb,
				RequiredItems: []string{"bhindi_masala"},
			},
			Dialogue: models.Dialogue{
				Intro:    "Hi there! I need something substantial today.",
				Positive: "Excellent! This is just the high-protein, low-carb meal I was looking for. You nailed it!",
				Neutral:  "Not bad. The protein is good, but it could be better balanced for my diet.",
				Negative: "This doesn't really fit my dietary needs. I was expecting something different.",
			},
		},
		{
			ID:   "customer_c",
			Name: "Mr. Verma",
			Order: models.Order{
				Description:   "I need a light meal, please. Some Palak Dal would be wonderful. No sugary treats!",
				PlateSize:     models.PlateLight,
				DietaryMode:   models.DietBalanced,
				RequiredItems: []string{"palak_dal"},
			},
			Dialogue: models.Dialogue{
				Intro:    "Good day. Something light and healthy, if you please.",
				Positive: "Marvelous! A light, perfectly balanced meal. Thank you so much!",
				Neutral:  "It's alright. A bit heavier than I'd like, but it will do.",
				Negative: "Oh dear, this is not quite right for my diet. It's not what I asked for.",
			},
		},
	}
}
