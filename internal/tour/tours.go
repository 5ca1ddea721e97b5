package tour

// BuiltinTours are the product's shipped tour definitions.
func BuiltinTours() []Tour {
	return []Tour{
		{
			ID:          "welcome",
			Name:        "Welcome to EstateHub",
			Description: "Get started with our platform",
			Category:    "welcome",
			Steps: []Step{
				{
					ID:       "welcome-1",
					Title:    "Welcome to EstateHub!",
					Content:  "Let's take a quick tour to help you get started with our premium real estate platform.",
					Target:   TargetBody,
					Position: PositionCenter,
				},
				{
					ID:       "welcome-2",
					Title:    "Navigation Menu",
					Content:  "Use this navigation bar to access different sections of the platform.",
					Target:   "nav",
					Position: PositionBottom,
				},
				{
					ID:       "welcome-3",
					Title:    "Browse Properties",
					Content:  "Click here to search and browse available properties for rent or sale.",
					Target:   `[data-tour-target="nav-properties"]`,
					Position: PositionBottom,
				},
				{
					ID:       "welcome-4",
					Title:    "Post Your Property",
					Content:  "Have a property to list? Click here to post your property and reach potential buyers or tenants.",
					Target:   `[data-tour-target="nav-post-property"]`,
					Position: PositionBottom,
				},
				{
					ID:       "welcome-5",
					Title:    "Market Analytics",
					Content:  "Access real-time market data and trends to make informed decisions.",
					Target:   `[data-tour-target="nav-market-analytics"]`,
					Position: PositionBottom,
				},
			},
		},
		{
			ID:          "property-search",
			Name:        "Property Search Guide",
			Description: "Learn how to find your perfect property",
			Category:    "feature",
			Steps: []Step{
				{
					ID:       "search-1",
					Title:    "Property Filters",
					Content:  "Use these filters to narrow down properties by price, location, type, and amenities.",
					Target:   ".property-filters",
					Position: PositionRight,
					Page:     "/properties",
				},
				{
					ID:       "search-2",
					Title:    "Property Cards",
					Content:  "Each card shows key property details. Click to view more information.",
					Target:   ".property-card:first-child",
					Position: PositionTop,
					Page:     "/properties",
				},
				{
					ID:       "search-3",
					Title:    "Favorites",
					Content:  "Click the heart icon to save properties to your favorites list.",
					Target:   ".favorite-button",
					Position: PositionLeft,
					Page:     "/properties",
				},
			},
		},
		{
			ID:          "post-property",
			Name:        "Post Property Guide",
			Description: "Learn how to list your property",
			Category:    "feature",
			Steps: []Step{
				{
					ID:       "post-1",
					Title:    "Property Details Form",
					Content:  "Fill in your property details including title, description, and price.",
					Target:   ".property-form",
					Position: PositionRight,
					Page:     "/post-property",
				},
				{
					ID:       "post-2",
					Title:    "Upload Photos",
					Content:  "Add high-quality photos to showcase your property.",
					Target:   ".photo-upload",
					Position: PositionTop,
					Page:     "/post-property",
				},
				{
					ID:       "post-3",
					Title:    "Contact Information",
					Content:  "Provide your contact details so interested buyers can reach you.",
					Target:   ".contact-info",
					Position: PositionLeft,
					Page:     "/post-property",
				},
			},
		},
		{
			ID:          "market-analytics",
			Name:        "Market Analytics Guide",
			Description: "Understand market trends and data",
			Category:    "feature",
			Steps: []Step{
				{
					ID:       "analytics-1",
					Title:    "Market Overview",
					Content:  "View overall market trends and key indicators for your selected region.",
					Target:   ".market-overview",
					Position: PositionBottom,
					Page:     "/market-analytics",
				},
				{
					ID:       "analytics-2",
					Title:    "Price Trends",
					Content:  "Analyze price trends over different time periods using these interactive charts.",
					Target:   ".price-charts",
					Position: PositionTop,
					Page:     "/market-analytics",
				},
				{
					ID:       "analytics-3",
					Title:    "Location Filters",
					Content:  "Filter data by country, state, or city to get localized insights.",
					Target:   ".location-filters",
					Position: PositionRight,
					Page:     "/market-analytics",
				},
			},
		},
	}
}
