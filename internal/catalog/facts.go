package catalog

import "mcp-nutriserve/internal/models"

func defaultFacts() []models.Fact {
	return []models.Fact{
		{
			ID:         "plate_method_basics",
			Text:       "Use the Diabetes Plate Method: half non starchy veggies, one quarter lean protein, one quarter carbohydrate foods.",
			SourceName: "American Diabetes Association — Create Your Plate",
			SourceURL:  "https://diabetes.org/food-and-fitness/food/planning-meals/create-your-plate/",
		},
		{
			ID:         "no_single_macro",
			Text:       "There is no single ideal carb, protein, and fat percentage for everyone with diabetes. Individualize the plan.",
			SourceName: "ADA Standards of Care 2025 — Facilitating Positive Health Behaviors",
			SourceURL:  "https://diabetesjournals.org/care/article/48/Supplement_1/S86/157563/5-Facilitating-Positive-Health-Behaviors-and-Well",
		},
		{
			ID:         "fiber_rule",
			Text:       "Aim for at least 14 grams of fiber per 1,000 kcal of intake.",
			SourceName: "Academy of Nutrition and Dietetics Position — Dietary Fiber",
			SourceURL:  "https://pubmed.ncbi.nlm.nih.gov/26514720/",
		},
		{
			ID:         "sodium_cap",
			Text:       "General sodium guidance: less than 2,300 mg per day for people age 14 and older unless told otherwise by a clinician.",
			SourceName: "Dietary Guidelines for Americans 2020–2025 — Executive Summary",
			SourceURL:  "https://www.dietaryguidelines.gov/sites/default/files/2020-12/DGA_2020-2025_ExecutiveSummary_English.pdf",
		},
		{
			ID:         "carb_practice_range",
			Text:       "Many programs start adults at about 45 to 60 grams of carbohydrate at main meals, then individualize.",
			SourceName: "CDC — Carb Counting to Manage Blood Sugar",
			SourceURL:  "https://www.cdc.gov/diabetes/healthy-eating/carb-counting-manage-blood-sugar.html",
		},
		{
			ID:         "carbs_impact_glucose",
			Text:       "Carbohydrate foods have the biggest impact on post meal blood glucose compared with protein or fat.",
			SourceName: "American Diabetes Association — Get to Know Carbs",
			SourceURL:  "https://diabetes.org/food-nutrition/understanding-carbs/get-to-know-carbs",
		},
		{
			ID:         "activity_goal",
			Text:       "Target at least 150 minutes per week of moderate intensity activity plus muscle strengthening on 2 days per week.",
			SourceName: "Physical Activity Guidelines for Americans — Executive Summary",
			SourceURL:  "https://odphp.health.gov/sites/default/files/2019-10/PAG_ExecutiveSummary.pdf",
		},
	}
}
