package stimuli

// SearchQuery is the query string shown on the simulated results page.
const SearchQuery = "what is climate change"

// SearchData is the search-results corpus: five on-topic results plus five
// tangential ones flagged irrelevant.
var SearchData = []SearchResultItem{
	{
		ID:            1,
		Title:         "Understanding Climate Change: A Comprehensive Guide",
		URL:           "www.climatescienceorg.edu/comprehensive-guide",
		Snippet:       "Climate change refers to long-term shifts in temperatures and weather patterns. These shifts may be natural, but since the 1800s, human activities have been the main driver of climate change, primarily due to the burning of fossil fuels...",
		Source:        "Climate Science Organization",
		Type:          "article",
		DatePublished: "Updated June 2023",
		Citations:     1240,
	},
	{
		ID:            2,
		Title:         "The Effects of Climate Change: Interactive Data Visualization",
		URL:           "www.globaldata.org/climate/interactive-map",
		Snippet:       "Explore our interactive maps showing rising sea levels, temperature changes, and extreme weather events over the past century. Data sourced from NOAA, NASA, and international meteorological organizations...",
		Source:        "Global Data Institute",
		Type:          "interactive",
		DatePublished: "Updated monthly",
		Citations:     856,
	},
	{
		ID:            3,
		Title:         "Climate Change Mitigation Strategies for Governments and Individuals",
		URL:           "www.environmentalaction.org/mitigation-strategies",
		Snippet:       "Learn about effective strategies to combat climate change at both policy and personal levels. Includes analysis of carbon pricing, renewable energy transitions, and lifestyle changes that make the biggest impact...",
		Source:        "Environmental Action Network",
		Type:          "article",
		DatePublished: "April 2023",
		Citations:     521,
		HasVideo:      true,
	},
	{
		ID:            4,
		Title:         "Latest IPCC Report on Climate Change (Summary)",
		URL:           "www.ipcc.int/reports/2023-summary",
		Snippet:       "The Intergovernmental Panel on Climate Change's latest assessment provides updated projections on global warming scenarios, environmental impacts, and critical thresholds. This summary breaks down key findings for policymakers...",
		Source:        "IPCC - Official Site",
		Type:          "report",
		DatePublished: "February 2023",
		Citations:     1872,
	},
	{
		ID:            5,
		Title:         "Climate Change: Separating Facts from Myths | Video Lecture",
		URL:           "www.edustream.com/watch/climate-lecture-series",
		Snippet:       "In this acclaimed lecture series, Dr. Miranda Chen addresses common misconceptions about climate science while explaining complex climate systems in accessible terms. Includes visual models and the latest research findings...",
		Source:        "EduStream",
		Type:          "video",
		DatePublished: "December 2022",
		Citations:     423,
		HasVideo:      true,
	},
	{
		ID:            6,
		Title:         "10 Best Weather Apps for Your Smartphone in 2023",
		URL:           "www.techreview.com/best-weather-apps-2023",
		Snippet:       "Stay prepared with these top-rated weather applications offering real-time forecasts, radar imagery, and severe weather alerts. Our comprehensive comparison includes free and premium options...",
		Source:        "Tech Review Magazine",
		Type:          "list article",
		DatePublished: "May 2023",
		Irrelevant:    true,
	},
	{
		ID:            7,
		Title:         "History of Meteorology: From Ancient Times to Modern Forecasting",
		URL:           "www.sciencehistory.edu/meteorology-timeline",
		Snippet:       "Trace the fascinating evolution of weather prediction from ancient observation techniques to modern supercomputer models. Learn how weather forecasting has transformed throughout human civilization...",
		Source:        "Science History Institute",
		Type:          "article",
		DatePublished: "January 2023",
		Irrelevant:    true,
	},
	{
		ID:            8,
		Title:         "Summer Travel: Best Destinations for Climate Tourism",
		URL:           "www.travelmagazine.com/climate-tourism-destinations",
		Snippet:       "Discover locations where you can witness unique climate zones, from rainforests to deserts, glaciers to coral reefs. Our guide includes sustainability ratings and conservation information for each destination...",
		Source:        "Travel Magazine",
		Type:          "travel guide",
		DatePublished: "April 2023",
		Irrelevant:    true,
	},
	{
		ID:            9,
		Title:         "Environmental Science Degrees: Career Prospects and Top Programs",
		URL:           "www.educationguide.com/environmental-science-degrees",
		Snippet:       "Considering a career in environmental science? This guide outlines degree requirements, job opportunities, salary expectations, and ranks the top university programs in climate and environmental studies...",
		Source:        "Education Guide",
		Type:          "education article",
		DatePublished: "March 2023",
		Irrelevant:    true,
	},
	{
		ID:            10,
		Title:         "Climate Fiction: How Literature Imagines Our Warming Future",
		URL:           "www.literaryjournal.com/climate-fiction-analysis",
		Snippet:       "Explore how novelists and writers are creating narratives around climate change. This literary analysis examines emerging trends in 'cli-fi' and how the genre influences public perception of environmental issues...",
		Source:        "Literary Journal Quarterly",
		Type:          "literary analysis",
		DatePublished: "February 2023",
		Irrelevant:    true,
	},
}

// SearchTheme tags result ids with a shared theme.
type SearchTheme struct {
	Theme string `json:"theme"`
	IDs   []int  `json:"ids"`
}

// SearchAISummary is the pre-generated narrative rendition of the results page.
type SearchAISummary struct {
	Overview        string         `json:"overview"`
	Themes          []SearchTheme  `json:"themes"`
	ResourceMetrics struct {
		TotalResults int            `json:"totalResults"`
		Types        map[string]int `json:"types"`
		CitationsMax int            `json:"citationsMax"`
		CitationsMin int            `json:"citationsMin"`
		CitationsAvg int            `json:"citationsAvg"`
	} `json:"resourceMetrics"`
	KeyInsights           []string `json:"keyInsights"`
	ActionRecommendations []string `json:"actionRecommendations"`
	TopResource           struct {
		ID        int    `json:"id"`
		Title     string `json:"title"`
		Citations int    `json:"citations"`
	} `json:"topResource"`
}

var SearchAISummaryData = func() SearchAISummary {
	s := SearchAISummary{
		Overview: "Top search results offer a multi-format deep dive into climate change: foundational science, interactive data trends, mitigation tactics, IPCC consensus, and myth-busting video content.",
		Themes: []SearchTheme{
			{Theme: "Foundational Science", IDs: []int{1}},
			{Theme: "Data & Visualization", IDs: []int{2}},
			{Theme: "Mitigation Strategies", IDs: []int{3}},
			{Theme: "Official Assessments", IDs: []int{4}},
			{Theme: "Educational Video", IDs: []int{5}},
		},
		KeyInsights: []string{
			"Since the 1800s, fossil-fuel combustion has been the primary driver of long-term climate shifts.",
			"Interactive maps illustrate accelerating sea-level rise and extreme weather trends.",
			"Effective mitigation blends policy measures (carbon pricing, renewables) with individual lifestyle changes.",
			"IPCC summary distills critical warming scenarios and policy roadmaps for decision-makers.",
			"Video lecture demystifies climate science and counters common misconceptions.",
		},
		ActionRecommendations: []string{
			"Use the interactive visualization to demonstrate urgent climate trends.",
			"Base policy or corporate strategies on the latest IPCC findings.",
			"Adopt and promote mitigation tactics at both organizational and personal levels.",
			"Incorporate the comprehensive guide and video into educational programs.",
		},
	}
	s.ResourceMetrics.TotalResults = 5
	s.ResourceMetrics.Types = map[string]int{"article": 2, "interactive": 1, "report": 1, "video": 1}
	s.ResourceMetrics.CitationsMax = 1872
	s.ResourceMetrics.CitationsMin = 423
	s.ResourceMetrics.CitationsAvg = 982
	s.TopResource.ID = 4
	s.TopResource.Title = "Latest IPCC Report on Climate Change (Summary)"
	s.TopResource.Citations = 1872
	return s
}()

var searchQuestions = []Question{
	{
		ID:   "search-engine_accuracy",
		Text: "Based on these search results, what should you consult if you need the most authoritative and up-to-date scientific information to cite in a policy paper about climate change impacts?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"The comprehensive guide from Climate Science Organization",
			"The interactive data visualization from Global Data Institute",
			"The mitigation strategies article from Environmental Action Network",
			"The latest IPCC report summary",
			"The video lecture series by Dr. Miranda Chen",
		},
	},
	{
		ID:   "search-engine_comprehension",
		Text: "Which of the following statements are accurate based on the search results provided?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"There are resources that include visual representations of climate data",
			"Human activities have been identified as the main driver of climate change since the 1800s",
			"The most recent IPCC report was published in February 2023",
			"There are resources specifically addressing climate change mitigation strategies",
			"All the search results focus exclusively on scientific aspects of climate change",
			"The search results include content published more than 5 years ago",
		},
		MultipleCorrectAnswers: true,
	},
}
