package content

var (
	aboutMe = []string{
		`I am an incoming PhD candidate at the University of Nottingham Ningbo China,
	working on Internet of Things and Edge Computing systems. My research focuses on
	optimizing communications and computing in next-generation IoT networks, particularly
	through Reconfigurable Intelligent Surfaces (RIS) and Mobile Edge Computing (MEC).`,

		`This wiki serves as my personal knowledge repository, documenting technical knowledge,
	research methodologies, and learning experiences across computer science, mathematics,
	embedded systems, and engineering. It is continuously updated as I explore new topics
	and deepen my understanding of existing ones.`,

		`Beyond academia, I co-founded Rosy Nebula Technology, where we explore the intersection
	of virtual production, AIGC, and digital innovation. I believe in open knowledge sharing
	and hope this wiki can benefit others on similar learning journeys.`,
	}

	featuresIntro = `This wiki is organized as a structured knowledge base covering multiple disciplines.
	Each article includes detailed explanations, code examples, and practical applications.`

	friendLinksNote = `{
  title: '网站名称',
  description: '网站描述',
  website: 'https://your-website.com',
  avatar: 'https://your-website.com/avatar.png'
}`
)

// Default returns the built-in site content. Every call returns a fresh value.
func Default() *Site {
	return &Site{
		Title:   "Dankao Chen",
		Tagline: "Personal academic homepage and knowledge wiki",
		Lang:    "en",
		DocsURL: "/docs/knowledge",
		BlogURL: "/blog",
		Home: Page{
			Title:       "Home",
			Description: "Personal academic homepage and knowledge wiki of Dankao Chen - PhD candidate researching IoT and Edge Computing",
		},
		Links: Page{
			Title:       "友情链接",
			Description: "我的友情链接页面 - Friend Links",
		},
		Profile: Profile{
			Name:        "陈单靠",
			NameEn:      "Dankao Chen",
			Title:       "PhD Candidate in Electrical and Electronic Engineering",
			Affiliation: "University of Nottingham Ningbo China",
			Email:       "dankaochen2002@gmail.com",
			GitHub:      "https://github.com/ReikiC",
			Avatar:      "/static/img/logo.svg",
			AvatarAlt:   "陈单靠的头像",
			Interests: []string{
				"Next-Generation Internet of Things",
				"Edge Computing",
				"Smart Home Systems",
				"Touch Fish",
			},
		},
		About: append([]string(nil), aboutMe...),
		Education: []EducationEntry{
			{
				Degree:      "Ph.D. in Electrical and Electronic Engineering",
				Institution: "University of Nottingham Ningbo China",
				Period:      "2026 - 2029 (Expected)",
				Note:        "Full Scholarship",
				Supervisors: []string{"Dr. Zheng Chu", "Dr. David Chieng", "Dr. Chiew-Foong Kwong"},
			},
			{
				Degree:      "M.Sc. in Connected Environments",
				Institution: "University College London",
				Period:      "2024 - 2025",
				Note:        "Merit Expected",
			},
			{
				Degree:      "B.Eng. (Hons) in Electrical and Electronic Engineering",
				Institution: "University of Nottingham Ningbo China",
				Period:      "2020 - 2024",
			},
		},
		Experience: []ExperienceEntry{
			{
				Title:        "Co-founder & CTO",
				Organization: "Ningbo Rosy Nebula Information Technology Co., Ltd.",
				Period:       "2022 - Present",
				Description:  "Leading R&D in virtual production, 3D modeling, and AIGC technologies",
			},
			{
				Title:        "Research Assistant",
				Organization: "University of Nottingham Ningbo China",
				Period:       "2023 - 2024",
				Description:  "RIS-assisted Mobile Edge Computing for NG-IoT networks",
			},
			{
				Title:        "Research Assistant",
				Organization: "University College London",
				Period:       "2024 - 2025",
				Description:  "Connected environments and IoT sensor systems",
			},
		},
		Statistics: []StatisticEntry{
			{Label: "Knowledge Articles", Value: "100+", Icon: "📄"},
			{Label: "Categories", Value: "7", Icon: "📁"},
			{Label: "Code Examples", Value: "500+", Icon: "💻"},
			{Label: "Last Updated", Value: "2025-01", Icon: "📅"},
		},
		Categories: []CategoryEntry{
			{Name: "数学基础", Icon: "📐", Path: "/docs/category/数学基础-1", Description: "微积分、线性代数、概率统计"},
			{Name: "计算机科学", Icon: "💻", Path: "/docs/category/计算机科学-1", Description: "算法、数据结构、C/C++、嵌入式系统"},
			{Name: "微电子学", Icon: "🔬", Path: "/docs/category/微电子学-1", Description: "微电子器件、集成电路设计"},
			{Name: "通信工程", Icon: "📡", Path: "/docs/category/通信工程-1", Description: "通信原理、信号处理、网络协议"},
			{Name: "工具和方法论", Icon: "🛠️", Path: "/docs/category/工具和方法论-1", Description: "开发工具、项目管理、GitHub"},
			{Name: "研究方法", Icon: "🔍", Path: "/docs/category/研究方法-1", Description: "实验设计、学术写作、数据分析"},
			{Name: "跨学科内容", Icon: "🌐", Path: "/docs/category/跨学科内容-1", Description: "多领域交叉融合知识"},
		},
		FeaturesIntro: featuresIntro,
		Features: []FeatureEntry{
			{Icon: "📖", Title: "Comprehensive Documentation", Description: "In-depth coverage of computer science fundamentals, from algorithms to system design"},
			{Icon: "💻", Title: "Code Examples", Description: "Practical code snippets and implementations in C/C++, Python, and JavaScript"},
			{Icon: "🔄", Title: "Continuously Updated", Description: "Regular updates with new topics, corrections, and expanded content"},
			{Icon: "🌐", Title: "Open Access", Description: "All content is freely accessible. Source code available on GitHub"},
		},
		FriendLinks: []FriendLinkEntry{
			{
				Title:       "Docusaurus",
				Description: "快速构建以内容为核心的最佳网站",
				Website:     "https://docusaurus.io/",
				Avatar:      "https://docusaurus.io/img/docusaurus.png",
			},
			{
				Title:       "React",
				Description: "用于构建用户界面的 JavaScript 库",
				Website:     "https://react.dev/",
				Avatar:      "https://react.dev/favicon.ico",
			},
			{
				Title:       "GitHub",
				Description: "全球最大的代码托管平台",
				Website:     "https://github.com",
				Avatar:      "https://github.githubassets.com/favicons/favicon.png",
			},
		},
		FriendLinksNote: friendLinksNote,
	}
}
