package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"

	"portfolioapi/internal/config"
	"portfolioapi/internal/database"
	"portfolioapi/internal/database/migration"
	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
	"portfolioapi/internal/repository/postgres"
)

// Seeds the database with the initial portfolio content. Existing records in
// every collection are wiped first, so this is only for fresh environments.
func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	seedCollection(ctx, postgres.NewDocStore[model.Experience](db, "experiences", "startDate"), experiences)
	seedCollection(ctx, postgres.NewDocStore[model.Education](db, "education", "startDate"), education)
	seedCollection(ctx, postgres.NewDocStore[model.Skill](db, "skills", ""), skills)
	seedCollection(ctx, postgres.NewDocStore[model.Project](db, "projects", "date"), projects)
	seedHistory(ctx, postgres.NewHistoryPostgres(db))

	log.Println("data seeded successfully")
}

func seedCollection[T any](ctx context.Context, repo repository.Collection[T], records []T) {
	if err := repo.DeleteAll(ctx); err != nil {
		log.Fatalf("failed to clear collection: %v", err)
	}
	for i := range records {
		if _, err := repo.Insert(ctx, uuid.NewString(), &records[i]); err != nil {
			log.Fatalf("failed to insert record: %v", err)
		}
	}
}

func seedHistory(ctx context.Context, repo repository.HistoryRepository) {
	if err := repo.DeleteAll(ctx); err != nil {
		log.Fatalf("failed to clear history: %v", err)
	}
	for i := range history {
		rec := &history[i]
		rec.ID = uuid.NewString()
		rec.Type = model.HistoryTypeItem
		if _, err := repo.Insert(ctx, rec.ID, rec); err != nil {
			log.Fatalf("failed to insert history record: %v", err)
		}
	}
}

var experiences = []model.Experience{
	{
		CompanyName: "Freelance / Personal Projects",
		Position:    "Frontend Developer & Graphics Designer",
		Logo:        "./Freelancer.jpg",
		StartDate:   "2023",
		EndDate:     "Present",
		Description: "Design and develop responsive, high-performance web applications using React, Next.js, Vite, and Tailwind CSS. Specialize in crafting modern, user-focused interfaces with Shadcn UI and custom design systems. Delivered SaaS products, admin dashboards, and AI-driven tools for clients and personal use, focusing on scalability, accessibility, and smooth UX.",
	},
	{
		CompanyName: "Hackathon Projects",
		Position:    "Full Stack Developer",
		Logo:        "./Hackathon.jpg",
		StartDate:   "2023",
		EndDate:     "Present",
		Description: "Built and deployed multiple award-winning hackathon projects by integrating AI/ML models into full-stack applications. Utilized Flask, TensorFlow.js, and REST APIs to create real-time, data-driven solutions. Experienced in rapid prototyping, agile teamwork, and delivering functional MVPs under tight deadlines.",
	},
}

var education = []model.Education{
	{
		CompanyName: "Charotar University of Science and Technology",
		Position:    "B.Tech in Artificial Intelligence and Machine Learning",
		Logo:        "/charusatlogo.png",
		StartDate:   "2024",
		EndDate:     "2028",
		Description: "Pursuing a comprehensive degree in AI & ML, covering deep learning, natural language processing, computer vision, and data science. Actively engaged in hackathons, collaborative research, and building industry-relevant projects that bridge academic learning with real-world applications. Committed to open-source contributions and AI-powered web development.",
	},
}

var skills = []model.Skill{
	{Tech: "React"},
	{Tech: "Next.js"},
	{Tech: "Tailwind CSS"},
	{Tech: "Shadcn UI"},
	{Tech: "Vite"},
	{Tech: "JavaScript"},
	{Tech: "Python"},
	{Tech: "TensorFlow.js"},
	{Tech: "Flask"},
	{Tech: "C++"},
	{Tech: "Git & GitHub"},
	{Tech: "Figma"},
}

var projects = []model.Project{
	{
		Title:       "Reactbits - Contribution",
		Description: "I made contributions to Reactbits, a well-known open-source React component library (24k stars). I developed a \"Gradual Blur\" component that creates a smooth blur effect at the top of the page or any element, enhancing visual appeal and user experience. Among top 8 contributors on GitHub.",
		Video:       "./gradualblur1 (2).mp4",
		Date:        "2024-07-01",
		Badges:      []string{"React", "AI/ML", "Netlify", "Healthcare"},
		LiveURL:     "https://reactbits.dev/animations/gradual-blur",
		GithubURL:   "https://github.com/DavidHDev/react-bits/pull/425",
		LiveText:    "Live Demo",
		GithubText:  "GitHub",
	},
	{
		Title:       "Scanix AI - Brain Tumor Detection",
		Description: "An AI-powered healthcare tool for brain tumor detection. Built in React, this web app leverages advanced ML models to analyze medical images and provide fast, accurate predictions. Awarded in Tech-Tonic Hackathon.",
		Video:       "./scanix.mp4",
		Date:        "2024-07-01",
		Badges:      []string{"React", "AI/ML", "Netlify", "Healthcare"},
		LiveURL:     "https://scanix-ai.netlify.app",
		GithubURL:   "https://github.com/Ansh-dhanani/Scanix_AI",
		LiveText:    "Live Demo",
		GithubText:  "GitHub",
	},
	{
		Title:       "NPM package - Gradual blur",
		Description: "I made a NPM gradual blur package as an animation effect with support for React, Svelte, Sve and with and without typescript in react.",
		Video:       "./package.mp4",
		Date:        "2024-07-01",
		Badges:      []string{"React", "AI/ML", "Netlify", "Healthcare"},
		LiveURL:     "https://reactbits.dev/animations/gradual-blur",
		GithubURL:   "https://github.com/DavidHDev/react-bits/pull/425",
		LiveText:    "Live Demo",
		GithubText:  "GitHub",
	},
}

var history = []model.History{
	{
		Logo:      "https://picsum.photos/150/150?random=8",
		Date:      "12-July-2024",
		Title:     "Tech-Tonic Hackathon — Scanix AI",
		Place:     "Remote / Online",
		Info:      "Built Scanix AI, an AI-powered brain tumor detection tool. Awarded for innovation in healthcare tech.",
		GithubURL: "https://github.com/Ansh-dhanani/Scanix_AI",
		SiteURL:   "https://scanix-ai.netlify.app",
	},
	{
		Logo:      "https://picsum.photos/150/150?random=9",
		Date:      "15-March-2024",
		Title:     "Oodo Hackathon — CheckWise AI",
		Place:     "Remote / Online",
		Info:      "Developed CheckWise AI, an automated CBC report diagnosis system using modern AI/ML models.",
		GithubURL: "https://github.com/Ansh-dhanani/CheckwiseAI",
		SiteURL:   "https://check-wise.netlify.app/",
	},
	{
		Logo:      "https://picsum.photos/150/150?random=7",
		Date:      "April-2024",
		Title:     "Open Source — React Template Library",
		Place:     "GitHub",
		Info:      "Published and maintained a React template library providing free premium templates and components.",
		GithubURL: "https://github.com/Ansh-dhanani/react_template",
	},
	{
		Logo:    "https://picsum.photos/150/150?random=12",
		Date:    "May-2024",
		Title:   "Stock Prediction App Launched",
		Place:   "Personal Project",
		Info:    "Designed and launched a modern React-based stock tracking and visualization app.",
		SiteURL: "https://stockpredicti0n.netlify.app/",
	},
}
