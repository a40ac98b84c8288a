package stimuli

// SlidesData is the presentation-deck corpus: ten slides, five flagged
// irrelevant (background material unrelated to the quarterly results).
var SlidesData = []SlideItem{
	{
		ID:    1,
		Title: "Q2 2023 Financial Results",
		Type:  "title slide",
		Body:  "TechInnovate Corporation\nQuarterly Performance Review\nJuly 15, 2023\nPresented by: Sarah Chen, CFO",
		Notes: "Welcome everyone to our Q2 2023 financial results presentation. Today we'll cover our performance highlights, key metrics, and outlook for the remainder of the year.",
	},
	{
		ID:    2,
		Title: "Q2 2023 Highlights",
		Type:  "bullet points",
		Bullets: []string{
			"Revenue: $78.5M (15% YoY increase)",
			"Operating Margin: 23.4% (up 2.1% from Q1)",
			"New Enterprise Customers: 42",
			"Cloud Division Growth: 28%",
			"Successfully launched TechInnovate AI Platform in May",
		},
		Notes: "Our Q2 results exceeded expectations across all major metrics. The launch of our AI Platform contributed significantly to the Cloud Division's growth this quarter.",
	},
	{
		ID:        3,
		Title:     "Revenue Breakdown by Division",
		Type:      "chart",
		ChartType: "pie chart",
		Chart: &ChartData{
			Labels: []string{"Cloud Services", "Enterprise Solutions", "Consumer Products", "Professional Services"},
			Values: []float64{42, 30, 18, 10},
			Unit:   "%",
		},
		Notes: "Cloud Services continues to be our strongest division at 42% of total revenue. Enterprise Solutions remains solid at 30%, while Consumer Products showed improvement at 18% compared to 15% last quarter.",
	},
	{
		ID:    4,
		Title: "Key Strategic Initiatives",
		Type:  "bullet points",
		Bullets: []string{
			"Expand AI Platform capabilities by Q4",
			"Increase APAC market presence - target 15% growth by EOY",
			"Complete acquisition of DataSecure Inc. (September)",
			"Launch next-gen Enterprise Solution suite (November)",
			"Improve operating margin to 25% by Q4",
		},
		Notes: "These five initiatives are our primary focus for the second half of 2023. The DataSecure acquisition is particularly strategic as it will enhance our security offerings.",
	},
	{
		ID:        5,
		Title:     "Q3-Q4 Revenue Forecast",
		Type:      "chart",
		ChartType: "line chart",
		Chart: &ChartData{
			Labels: []string{"Q1", "Q2", "Q3 (Projected)", "Q4 (Projected)"},
			Values: []float64{68.2, 78.5, 85.3, 94.7},
			Unit:   "$ Millions",
		},
		Notes: "We're projecting continued growth for Q3 and Q4, with Q4 expected to be particularly strong due to the holiday season and enterprise year-end budget spending.",
	},
	{
		ID:    6,
		Title: "Company History",
		Type:  "timeline",
		Bullets: []string{
			"2005: Founded in San Francisco",
			"2008: First enterprise product launched",
			"2012: IPO",
			"2015: Expansion to European markets",
			"2019: Launch of Cloud Services division",
			"2022: 1000th employee hired",
		},
		Notes:      "This slide provides background context but isn't directly relevant to the Q2 results discussion.",
		Irrelevant: true,
	},
	{
		ID:    7,
		Title: "Our Leadership Team",
		Type:  "profiles",
		Bullets: []string{
			"Michael Rodriguez - CEO (15 years at company)",
			"Sarah Chen - CFO (8 years at company)",
			"Raj Patel - CTO (10 years at company)",
			"Elena Gomez - CMO (5 years at company)",
			"David Kim - COO (7 years at company)",
		},
		Notes:      "Introducing our executive team for new investors, not directly relevant to quarterly results.",
		Irrelevant: true,
	},
	{
		ID:         8,
		Title:      "Office Locations",
		Type:       "map",
		Body:       "Map showing headquarters in San Francisco with additional offices in New York, London, Singapore, and Sydney. New Tokyo office opening in 2024.",
		Notes:      "Our global presence continues to expand, though this isn't directly related to Q2 performance.",
		Irrelevant: true,
	},
	{
		ID:    9,
		Title: "Corporate Social Responsibility",
		Type:  "bullet points",
		Bullets: []string{
			"Carbon neutral operations since 2021",
			"STEM education initiative reached 5,000 students",
			"Employee volunteer program - 5,000+ hours contributed",
			"Diversity & inclusion benchmarks exceeded",
		},
		Notes:      "While important to our overall corporate identity, these CSR initiatives aren't directly tied to the financial results.",
		Irrelevant: true,
	},
	{
		ID:         10,
		Title:      "Technology Stack Overview",
		Type:       "diagram",
		Body:       "Technical architecture diagram showing our product ecosystem, including Cloud Infrastructure, AI Components, Enterprise Solutions, API Integration Layer, and Security Framework.",
		Notes:      "This technical overview is more appropriate for product-focused meetings rather than financial results.",
		Irrelevant: true,
	},
}

// SlideAISummary is the pre-generated narrative rendition of the deck.
type SlideAISummary struct {
	Period      string `json:"period"`
	Company     string `json:"company"`
	Performance struct {
		TotalRevenue               float64 `json:"totalRevenue"`
		CurrencyUnit               string  `json:"currencyUnit"`
		YoYGrowthPercent           float64 `json:"yoyGrowthPercent"`
		OperatingMarginPercent     float64 `json:"operatingMarginPercent"`
		NewEnterpriseCustomers     int     `json:"newEnterpriseCustomers"`
		CloudDivisionGrowthPercent float64 `json:"cloudDivisionGrowthPercent"`
		AIPlatformLaunchMonth      string  `json:"aiPlatformLaunchMonth"`
	} `json:"performance"`
	RevenueByDivision struct {
		CloudServices        float64 `json:"cloudServices"`
		EnterpriseSolutions  float64 `json:"enterpriseSolutions"`
		ConsumerProducts     float64 `json:"consumerProducts"`
		ProfessionalServices float64 `json:"professionalServices"`
		Unit                 string  `json:"unit"`
	} `json:"revenueByDivision"`
	StrategicInitiatives []string `json:"strategicInitiatives"`
	Forecast             struct {
		Q3           float64  `json:"q3"`
		Q4           float64  `json:"q4"`
		CurrencyUnit string   `json:"currencyUnit"`
		KeyDrivers   []string `json:"keyDrivers"`
	} `json:"forecast"`
}

var SlidesAISummary = func() SlideAISummary {
	s := SlideAISummary{
		Period:  "Q2 2023",
		Company: "TechInnovate Corporation",
		StrategicInitiatives: []string{
			"Expand AI Platform capabilities by Q4 2023",
			"Grow APAC presence by 15% year-end",
			"Complete DataSecure Inc. acquisition in September",
			"Launch next-gen Enterprise suite in November",
			"Raise operating margin to 25% by Q4 2023",
		},
	}
	s.Performance.TotalRevenue = 78.5
	s.Performance.CurrencyUnit = "USD Millions"
	s.Performance.YoYGrowthPercent = 15
	s.Performance.OperatingMarginPercent = 23.4
	s.Performance.NewEnterpriseCustomers = 42
	s.Performance.CloudDivisionGrowthPercent = 28
	s.Performance.AIPlatformLaunchMonth = "May 2023"
	s.RevenueByDivision.CloudServices = 42
	s.RevenueByDivision.EnterpriseSolutions = 30
	s.RevenueByDivision.ConsumerProducts = 18
	s.RevenueByDivision.ProfessionalServices = 10
	s.RevenueByDivision.Unit = "%"
	s.Forecast.Q3 = 85.3
	s.Forecast.Q4 = 94.7
	s.Forecast.CurrencyUnit = "USD Millions"
	s.Forecast.KeyDrivers = []string{"Holiday season demand", "Enterprise year-end spending"}
	return s
}()

var slideQuestions = []Question{
	{
		ID:   "presentation-slide_accuracy",
		Text: "Based on this presentation, which strategic action should investors expect to impact the company's security offerings most directly in the near future?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"The expansion of the AI Platform capabilities",
			"Increasing presence in the APAC market",
			"The acquisition of DataSecure Inc.",
			"Launching the next generation of Enterprise Solution suite",
			"Improving the operating margin to 25%",
		},
	},
	{
		ID:   "presentation-slide_comprehension",
		Text: "Which of the following statements are accurate based on the presentation slides?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"The company's revenue increased by 15% compared to the same quarter last year",
			"Cloud Services represents less than 40% of the company's revenue",
			"The company expects Q4 revenue to exceed $90 million",
			"The AI Platform was launched in the previous quarter (Q1)",
			"The company added more than 40 new enterprise customers in Q2",
			"The operating margin decreased compared to Q1",
		},
		MultipleCorrectAnswers: true,
	},
}
