package repository

import "github.com/1739467001-svg/kaiyan/internal/domain"

// Seed datasets are language-variant content, not live translations:
// the catalog is wholesale-replaced with the matching variant whenever
// the language toggles.

var seedActivitiesZH = []domain.Activity{
	{
		ID:             "a1",
		Title:          "探秘秦岭大自然：动植物标本研学营",
		Cover:          "https://picsum.photos/seed/nature1/800/600",
		Price:          299,
		AgeRange:       "6-12岁",
		RemainingSlots: 15,
		Rating:         4.9,
		Theme:          domain.ThemeNature,
		Duration:       "1天",
		Itinerary:      []string{"08:30 集合出发", "10:00 森林认知讲座", "12:00 特色农家餐", "14:00 制作叶脉书签", "16:30 结营返程"},
		Description:    "走进秦岭深处，通过实地观察与手工制作，激发孩子们对自然的热爱。",
	},
	{
		ID:             "a2",
		Title:          "古法造纸术：传统文化传承实战课",
		Cover:          "https://picsum.photos/seed/history1/800/600",
		Price:          158,
		AgeRange:       "8-15岁",
		RemainingSlots: 8,
		Rating:         4.8,
		Theme:          domain.ThemeHistory,
		Duration:       "4小时",
		Itinerary:      []string{"14:00 文化背景介绍", "14:30 浆料准备", "15:30 抄纸体验", "17:00 作品展示"},
		Description:    "亲手体验蔡伦造纸的艺术，了解千年文明的载体是如何诞生的。",
	},
	{
		ID:             "a3",
		Title:          "明日宇航员：水火箭发射与动力学研究",
		Cover:          "https://picsum.photos/seed/science1/800/600",
		Price:          399,
		AgeRange:       "10-18岁",
		RemainingSlots: 20,
		Rating:         5.0,
		Theme:          domain.ThemeScience,
		Duration:       "2天",
		Itinerary:      []string{"Day1: 空气动力学原理学习", "Day1: 设计图绘制", "Day2: 组装与调试", "Day2: 飞行竞赛"},
		Description:    "硬核科学研学，在实践中掌握物理知识，放飞航天梦想。",
	},
}

var seedActivitiesEN = []domain.Activity{
	{
		ID:             "a1",
		Title:          "Qinling Nature Secrets: Bio-Specimen Camp",
		Cover:          "https://picsum.photos/seed/nature1/800/600",
		Price:          299,
		AgeRange:       "6-12 Years",
		RemainingSlots: 15,
		Rating:         4.9,
		Theme:          domain.ThemeNature,
		Duration:       "1 Day",
		Itinerary:      []string{"08:30 Departure", "10:00 Forest Lecture", "12:00 Farm Lunch", "14:00 Leaf Bookmark DIY", "16:30 Return"},
		Description:    "Venture deep into the Qinling Mountains to inspire a love for nature through field observation and crafts.",
	},
	{
		ID:             "a2",
		Title:          "Ancient Papermaking: Heritage Workshop",
		Cover:          "https://picsum.photos/seed/history1/800/600",
		Price:          158,
		AgeRange:       "8-15 Years",
		RemainingSlots: 8,
		Rating:         4.8,
		Theme:          domain.ThemeHistory,
		Duration:       "4 Hours",
		Itinerary:      []string{"14:00 History Intro", "14:30 Pulp Prep", "15:30 Paper Making", "17:00 Exhibition"},
		Description:    "Experience the art of Cai Lun papermaking and understand how the carrier of millennial civilization was born.",
	},
	{
		ID:             "a3",
		Title:          "Future Astronaut: Water Rocket & Dynamics",
		Cover:          "https://picsum.photos/seed/science1/800/600",
		Price:          399,
		AgeRange:       "10-18 Years",
		RemainingSlots: 20,
		Rating:         5.0,
		Theme:          domain.ThemeScience,
		Duration:       "2 Days",
		Itinerary:      []string{"Day1: Aerodynamics", "Day1: Blueprint Design", "Day2: Assembly", "Day2: Flight Contest"},
		Description:    "Hardcore science workshop to master physics knowledge in practice and fly aerospace dreams.",
	},
}

var seedVenuesZH = []domain.Venue{
	{
		ID:           "v1",
		Name:         "创客实验室 101",
		Type:         "实验室",
		Capacity:     30,
		Facilities:   []string{"3D打印机", "激光切割机", "示波器", "高速WiFi"},
		Image:        "https://picsum.photos/seed/lab1/800/600",
		PricePerHour: 100,
		IsAvailable:  true,
		Address:      "开堰研学基地 A栋一层",
	},
	{
		ID:           "v2",
		Name:         "云端会议厅",
		Type:         "会议室",
		Capacity:     100,
		Facilities:   []string{"投影仪", "扩音系统", "智能录屏", "茶歇区"},
		Image:        "https://picsum.photos/seed/meeting1/800/600",
		PricePerHour: 200,
		IsAvailable:  true,
		Address:      "开堰研学基地 B栋顶层",
	},
	{
		ID:           "v3",
		Name:         "星空草坪营地",
		Type:         "户外营地",
		Capacity:     200,
		Facilities:   []string{"烧烤位", "露营天幕", "室外电源", "盥洗室"},
		Image:        "https://picsum.photos/seed/outdoor1/800/600",
		PricePerHour: 300,
		IsAvailable:  false,
		Address:      "开堰研学基地 东侧绿地区",
	},
}

var seedVenuesEN = []domain.Venue{
	{
		ID:           "v1",
		Name:         "Maker Lab 101",
		Type:         "Laboratory",
		Capacity:     30,
		Facilities:   []string{"3D Printer", "Laser Cutter", "Oscilloscope", "High-Speed WiFi"},
		Image:        "https://picsum.photos/seed/lab1/800/600",
		PricePerHour: 100,
		IsAvailable:  true,
		Address:      "Kaiyan Base, Bldg A, 1F",
	},
	{
		ID:           "v2",
		Name:         "Cloud Conference Hall",
		Type:         "Conference",
		Capacity:     100,
		Facilities:   []string{"Projector", "PA System", "Smart Recording", "Coffee Break Area"},
		Image:        "https://picsum.photos/seed/meeting1/800/600",
		PricePerHour: 200,
		IsAvailable:  true,
		Address:      "Kaiyan Base, Bldg B, Top Floor",
	},
	{
		ID:           "v3",
		Name:         "Starry Lawn Camp",
		Type:         "Outdoor",
		Capacity:     200,
		Facilities:   []string{"BBQ Spots", "Camping Tarp", "Outdoor Power", "Restrooms"},
		Image:        "https://picsum.photos/seed/outdoor1/800/600",
		PricePerHour: 300,
		IsAvailable:  false,
		Address:      "Kaiyan Base, East Green Zone",
	},
}

func seedActivities(lang domain.Language) []domain.Activity {
	src := seedActivitiesZH
	if lang == domain.LanguageEN {
		src = seedActivitiesEN
	}
	out := make([]domain.Activity, len(src))
	copy(out, src)
	return out
}

func seedVenues(lang domain.Language) []domain.Venue {
	src := seedVenuesZH
	if lang == domain.LanguageEN {
		src = seedVenuesEN
	}
	out := make([]domain.Venue, len(src))
	copy(out, src)
	return out
}
