package mockserver

// DefaultFixtures returns built-in Tel Aviv sample data covering the three
// geometry families.
func DefaultFixtures() []Fixture {
	return []Fixture{
		{
			Match: "cafes",
			SQL:   "SELECT id, name, rating, geojson FROM cafes",
			Results: []map[string]any{
				{
					"id":     1,
					"name":   "Cafe Nahat",
					"rating": 4.6,
					"geojson": map[string]any{
						"type":        "Point",
						"coordinates": []any{34.7748, 32.0663},
					},
				},
				{
					"id":     2,
					"name":   "Edmund",
					"rating": 4.4,
					"geojson": map[string]any{
						"type":        "Point",
						"coordinates": []any{34.7722, 32.0809},
					},
				},
			},
		},
		{
			Match: "streets",
			SQL:   "SELECT id, name, geojson FROM streets",
			Results: []map[string]any{
				{
					"id":   10,
					"name": "Rothschild Blvd",
					"geojson": map[string]any{
						"type": "LineString",
						"coordinates": []any{
							[]any{34.7691, 32.0625},
							[]any{34.7752, 32.0663},
							[]any{34.7800, 32.0695},
						},
					},
				},
			},
		},
		{
			Match: "parks",
			SQL:   "SELECT id, name, area_sqm, geojson FROM parks",
			Results: []map[string]any{
				{
					"id":       20,
					"name":     "Meir Park",
					"area_sqm": 35000,
					"geojson": map[string]any{
						"type": "Polygon",
						"coordinates": []any{
							[]any{
								[]any{34.7735, 32.0701},
								[]any{34.7748, 32.0701},
								[]any{34.7748, 32.0712},
								[]any{34.7735, 32.0712},
								[]any{34.7735, 32.0701},
							},
						},
					},
				},
			},
		},
	}
}
