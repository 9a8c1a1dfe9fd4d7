package seed

import (
	"time"

	"dawah-portal/internal/entity"
	"dawah-portal/internal/model"
	"dawah-portal/internal/repo/persistent"

	"gorm.io/gorm"
)

// Run populates the store with the portal's sample content. Each table is
// only seeded when empty, so repeated runs are harmless.
func Run(db *gorm.DB) error {
	categories, err := seedCategories(db)
	if err != nil {
		return err
	}
	if err := seedArticles(db, categories); err != nil {
		return err
	}
	if err := seedVideos(db, categories); err != nil {
		return err
	}
	return seedQuestions(db, categories)
}

func seedCategories(db *gorm.DB) (map[string]string, error) {
	var count int64
	if err := db.Model(&model.CategoryModel{}).Count(&count).Error; err != nil {
		return nil, err
	}

	ids := map[string]string{}
	if count > 0 {
		var existing []model.CategoryModel
		if err := db.Find(&existing).Error; err != nil {
			return nil, err
		}
		for _, c := range existing {
			ids[c.Name] = c.ID
		}
		return ids, nil
	}

	repo := persistent.NewCategoryRepository(db)
	for _, c := range []entity.Category{
		{Name: "Islamic Foundations", Description: "The essentials of the faith", Type: entity.CategoryTypeArticle},
		{Name: "Aqeedah", Description: "Creed and belief", Type: entity.CategoryTypeArticle},
		{Name: "Allah's Attributes", Description: "The names and attributes of Allah", Type: entity.CategoryTypeArticle},
		{Name: "Seerah", Description: "The life of the Prophet ﷺ", Type: entity.CategoryTypeVideo},
		{Name: "Islamic Education", Description: "Lectures and courses", Type: entity.CategoryTypeVideo},
		{Name: "Prayer", Description: "Salah and worship", Type: entity.CategoryTypeVideo},
		{Name: "Fiqh", Description: "Islamic jurisprudence", Type: entity.CategoryTypeQuestion},
		{Name: "Spiritual Development", Description: "Strengthening the heart", Type: entity.CategoryTypeQuestion},
		{Name: "Islamic Rulings", Description: "Rulings and scholarly opinions", Type: entity.CategoryTypeQuestion},
	} {
		category := c
		if err := repo.Create(&category); err != nil {
			return nil, err
		}
		ids[category.Name] = category.ID
	}
	return ids, nil
}

func seedArticles(db *gorm.DB, categories map[string]string) error {
	var count int64
	if err := db.Model(&model.ArticleModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	repo := persistent.NewArticleRepository(db)
	articles := []entity.Article{
		{
			Title:         "The Five Pillars of Islam: A Complete Guide",
			Content:       "The Five Pillars of Islam are the foundation of Muslim life. They are Shahada (faith), Salah (prayer), Zakat (charity), Sawm (fasting), and Hajj (pilgrimage). These pillars unite Muslims worldwide in their worship and devotion to Allah.",
			Author:        "Sheikh Abdullah",
			CategoryID:    categories["Islamic Foundations"],
			ImageURL:      "https://images.unsplash.com/photo-1591604466107-ec97de577aff?w=800",
			PublishedDate: time.Now().AddDate(0, 0, -5),
			Views:         2834,
			Tags:          []string{"pillars", "basics", "islam", "faith"},
		},
		{
			Title:         "Understanding Tawheed: The Oneness of Allah",
			Content:       "Tawheed is the fundamental concept in Islam - the belief in the absolute oneness and uniqueness of Allah. It is the foundation upon which the entire religion is built.",
			Author:        "Dr. Fatima Ahmed",
			CategoryID:    categories["Aqeedah"],
			ImageURL:      "https://images.unsplash.com/photo-1542816417-0983c9c9ad53?w=800",
			PublishedDate: time.Now().AddDate(0, 0, -3),
			Views:         1967,
			Tags:          []string{"tawheed", "aqeedah", "belief", "monotheism"},
		},
		{
			Title:         "The Beautiful Names of Allah (Asma ul Husna)",
			Content:       "Allah has 99 beautiful names, each reflecting His perfect attributes and qualities. Learning and understanding these names deepens our love and knowledge of our Creator.",
			Author:        "Imam Hassan",
			CategoryID:    categories["Allah's Attributes"],
			ImageURL:      "https://images.unsplash.com/photo-1564769625905-50e93615e769?w=800",
			PublishedDate: time.Now().AddDate(0, 0, -2),
			Views:         1523,
			Tags:          []string{"names", "attributes", "asma-ul-husna"},
		},
		{
			Title:         "Prophet Muhammad ﷺ: The Final Messenger",
			Content:       "Prophet Muhammad (peace be upon him) was sent as a mercy to all of mankind. His life is the perfect example for every Muslim to follow in worship, character, and dealings.",
			Author:        "Sheikh Abdullah",
			CategoryID:    categories["Islamic Foundations"],
			ImageURL:      "https://images.unsplash.com/photo-1584289457850-372a19b5bfb0?w=800",
			PublishedDate: time.Now().AddDate(0, 0, -1),
			Views:         3310,
			Tags:          []string{"prophet", "muhammad", "messenger"},
		},
	}

	// Going through the repository keeps the historic dates and view counts;
	// the usecase create path would reset them.
	for i := range articles {
		if err := repo.Create(&articles[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedVideos(db *gorm.DB, categories map[string]string) error {
	var count int64
	if err := db.Model(&model.VideoModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	repo := persistent.NewVideoRepository(db)
	videos := []entity.Video{
		{
			Title:         "Introduction to Islam: What Every Muslim Should Know",
			Description:   "A comprehensive introduction to Islam covering the basics of faith, pillars, and essential beliefs every Muslim needs to understand.",
			VideoURL:      "https://www.youtube.com/embed/GhQdlIFylQ8",
			ThumbnailURL:  "https://images.unsplash.com/photo-1591604466107-ec97de577aff?w=800",
			CategoryID:    categories["Islamic Education"],
			Author:        "Sheikh Yasir Qadhi",
			PublishedDate: time.Now().AddDate(0, 0, -10),
			Views:         8432,
			Duration:      45 * 60,
			Tags:          []string{"islam", "basics", "education", "beginners"},
		},
		{
			Title:         "The Life of Prophet Muhammad ﷺ - Complete Seerah",
			Description:   "An in-depth biography of Prophet Muhammad (peace be upon him) from birth to his final days.",
			VideoURL:      "https://www.youtube.com/embed/TNhaISOUy6Q",
			ThumbnailURL:  "https://images.unsplash.com/photo-1584289457850-372a19b5bfb0?w=800",
			CategoryID:    categories["Seerah"],
			Author:        "Mufti Menk",
			PublishedDate: time.Now().AddDate(0, 0, -6),
			Views:         12510,
			Duration:      52 * 60,
			Tags:          []string{"prophet", "muhammad", "seerah", "biography"},
		},
		{
			Title:         "How to Perform Salah (Prayer) - Step by Step Guide",
			Description:   "Learn the correct way to perform the five daily prayers with detailed explanations of each position, recitation, and intention.",
			VideoURL:      "https://www.youtube.com/embed/fmvcAzHpsk8",
			ThumbnailURL:  "https://images.unsplash.com/photo-1591604466107-ec97de577aff?w=800",
			CategoryID:    categories["Prayer"],
			Author:        "Sheikh Omar Suleiman",
			PublishedDate: time.Now().AddDate(0, 0, -4),
			Views:         15867,
			Duration:      38 * 60,
			Tags:          []string{"salah", "prayer", "worship", "tutorial"},
		},
	}

	for i := range videos {
		if err := repo.Create(&videos[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedQuestions(db *gorm.DB, categories map[string]string) error {
	var count int64
	if err := db.Model(&model.QuestionModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	repo := persistent.NewQuestionRepository(db)
	questions := []entity.Question{
		{
			Title:      "What are the conditions for Wudu (ablution) to be valid?",
			Content:    "I want to make sure I'm performing wudu correctly. What are the essential conditions and steps that must be followed for wudu to be valid according to Islamic teachings?",
			Author:     "Ahmad Hassan",
			CategoryID: categories["Fiqh"],
			AskedDate:  time.Now().AddDate(0, 0, -8),
			Views:      856,
			Tags:       []string{"wudu", "purification", "fiqh", "worship"},
			Answers: []entity.Answer{
				{
					Content:      "Wudu has several conditions: 1) Intention (niyyah), 2) Washing the face, 3) Washing both arms up to the elbows, 4) Wiping the head, 5) Washing both feet up to the ankles. These must be done in order without long breaks between them.",
					Author:       "Sheikh Abdullah Rahman",
					AnsweredDate: time.Now().AddDate(0, 0, -7),
					Votes:        24,
					IsAccepted:   true,
				},
				{
					Content:      "In addition to the steps mentioned, ensure you use clean water and that there are no barriers preventing water from reaching your skin (like nail polish). The intention should be made in your heart before starting.",
					Author:       "Ustadh Ibrahim",
					AnsweredDate: time.Now().AddDate(0, 0, -7),
					Votes:        12,
				},
			},
		},
		{
			Title:      "How can I develop a stronger connection with the Quran?",
			Content:    "I read the Quran but sometimes struggle to feel connected. What are some practical ways to strengthen my relationship with Allah's book and make its recitation more meaningful?",
			Author:     "Aisha Mohammed",
			CategoryID: categories["Spiritual Development"],
			AskedDate:  time.Now().AddDate(0, 0, -5),
			Views:      1234,
			Tags:       []string{"quran", "spirituality", "connection", "recitation"},
			Answers: []entity.Answer{
				{
					Content:      "Start by learning the meanings of what you recite. Even if you can't understand Arabic fully, read the translation. Set a daily routine, even if it's just a few verses, and reflect on how to apply them.",
					Author:       "Dr. Khadijah Ahmed",
					AnsweredDate: time.Now().AddDate(0, 0, -4),
					Votes:        31,
					IsAccepted:   true,
				},
			},
		},
		{
			Title:      "Is it permissible to celebrate the Prophet's ﷺ birthday (Mawlid)?",
			Content:    "There are different opinions about celebrating Mawlid al-Nabi. What is the Islamic ruling on this, and what were the practices of the early generations?",
			Author:     "Yusuf Ali",
			CategoryID: categories["Islamic Rulings"],
			AskedDate:  time.Now().AddDate(0, 0, -3),
			Views:      2167,
			Tags:       []string{"mawlid", "celebration", "fiqh", "bidah"},
			Answers: []entity.Answer{
				{
					Content:      "This is a matter of scholarly difference. Some scholars permit it as an expression of love for the Prophet ﷺ, while others consider it an innovation as it wasn't practiced by the early generations. The best way to honor the Prophet ﷺ is to follow his teachings throughout the year.",
					Author:       "Sheikh Omar Abdullah",
					AnsweredDate: time.Now().AddDate(0, 0, -2),
					Votes:        18,
					IsAccepted:   true,
				},
			},
		},
	}

	for i := range questions {
		if err := repo.Create(&questions[i]); err != nil {
			return err
		}
	}
	return nil
}
