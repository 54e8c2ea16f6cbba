package achievements

// Catalog returns the built-in achievement catalog in display order.
func Catalog() []Achievement {
	return []Achievement{
		{
			ID:          "first-lesson",
			Name:        "First Steps",
			Description: "Complete your first lesson",
			Icon:        "🌱",
			Category:    "learning",
			Rarity:      RarityCommon,
			XPReward:    25,
			Requirements: []Requirement{
				{Stat: StatLessonsCompleted, Threshold: 1},
			},
		},
		{
			ID:          "lessons-10",
			Name:        "Dedicated Learner",
			Description: "Complete 10 lessons",
			Icon:        "📚",
			Category:    "learning",
			Rarity:      RarityRare,
			XPReward:    100,
			Requirements: []Requirement{
				{Stat: StatLessonsCompleted, Threshold: 10},
			},
		},
		{
			ID:          "lessons-25",
			Name:        "Scholar",
			Description: "Complete 25 lessons",
			Icon:        "🎓",
			Category:    "learning",
			Rarity:      RarityEpic,
			XPReward:    250,
			Requirements: []Requirement{
				{Stat: StatLessonsCompleted, Threshold: 25},
			},
		},
		{
			ID:          "first-lab",
			Name:        "Lab Rat",
			Description: "Complete your first lab",
			Icon:        "🔬",
			Category:    "learning",
			Rarity:      RarityCommon,
			XPReward:    25,
			Requirements: []Requirement{
				{Stat: StatLabsCompleted, Threshold: 1},
			},
		},
		{
			ID:          "labs-10",
			Name:        "Experimenter",
			Description: "Complete 10 labs",
			Icon:        "⚗️",
			Category:    "learning",
			Rarity:      RarityRare,
			XPReward:    150,
			Requirements: []Requirement{
				{Stat: StatLabsCompleted, Threshold: 10},
			},
		},
		{
			ID:          "blogs-5",
			Name:        "Curious Reader",
			Description: "Read 5 blog articles",
			Icon:        "📰",
			Category:    "learning",
			Rarity:      RarityCommon,
			XPReward:    50,
			Requirements: []Requirement{
				{Stat: StatBlogsRead, Threshold: 5},
			},
		},
		{
			ID:          "streak-3",
			Name:        "Warming Up",
			Description: "Keep a 3-day streak",
			Icon:        "🔥",
			Category:    "consistency",
			Rarity:      RarityCommon,
			XPReward:    30,
			Requirements: []Requirement{
				{Stat: StatCurrentStreak, Threshold: 3},
			},
		},
		{
			ID:          "streak-7",
			Name:        "Week Warrior",
			Description: "Keep a 7-day streak",
			Icon:        "⚡",
			Category:    "consistency",
			Rarity:      RarityRare,
			XPReward:    100,
			Requirements: []Requirement{
				{Stat: StatCurrentStreak, Threshold: 7},
			},
		},
		{
			ID:          "streak-30",
			Name:        "Unstoppable",
			Description: "Keep a 30-day streak",
			Icon:        "🌟",
			Category:    "consistency",
			Rarity:      RarityLegendary,
			XPReward:    500,
			Requirements: []Requirement{
				{Stat: StatCurrentStreak, Threshold: 30},
			},
		},
		{
			ID:          "profile-half",
			Name:        "Getting Settled",
			Description: "Fill in half of your profile",
			Icon:        "👤",
			Category:    "profile",
			Rarity:      RarityCommon,
			XPReward:    20,
			Requirements: []Requirement{
				{Stat: StatProfileCompletion, Threshold: 50},
			},
		},
		{
			ID:          "profile-complete",
			Name:        "Open Book",
			Description: "Complete your entire profile",
			Icon:        "✨",
			Category:    "profile",
			Rarity:      RarityEpic,
			XPReward:    150,
			Requirements: []Requirement{
				{Stat: StatProfileCompletion, Threshold: 100},
			},
		},
		{
			ID:          "level-5",
			Name:        "Rising Star",
			Description: "Reach level 5",
			Icon:        "⭐",
			Category:    "milestones",
			Rarity:      RarityRare,
			XPReward:    200,
			Requirements: []Requirement{
				{Stat: StatLevel, Threshold: 5},
			},
		},
		{
			ID:          "xp-1000",
			Name:        "Powerhouse",
			Description: "Earn 1,000 total XP",
			Icon:        "💪",
			Category:    "milestones",
			Rarity:      RarityEpic,
			XPReward:    250,
			Requirements: []Requirement{
				{Stat: StatTotalXP, Threshold: 1000},
			},
		},
		{
			ID:          "active-14",
			Name:        "Regular",
			Description: "Be active on 14 different days",
			Icon:        "📅",
			Category:    "consistency",
			Rarity:      RarityRare,
			XPReward:    120,
			Requirements: []Requirement{
				{Stat: StatDaysActive, Threshold: 14},
			},
		},
	}
}
