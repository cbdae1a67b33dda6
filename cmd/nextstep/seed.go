package main

import (
	"context"
	"log/slog"

	"nextstep/internal/domain/entity"
	"nextstep/internal/domain/lifecycle"
	"nextstep/internal/domain/repository"
	"nextstep/internal/domain/service"
	"nextstep/internal/errors"
	"nextstep/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var (
	seedAdminEmail    string
	seedAdminPassword string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample mentors and roadmaps into empty tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		var params seedParams
		app := fx.New(
			injectInfra(),
			injectRepo(),
			injectService(),
			injectUsecase(),
			fx.Populate(&params),
		)
		if err := app.Err(); err != nil {
			return err
		}

		startCtx, cancel := context.WithTimeout(cmd.Context(), lifecycle.DefaultTimeout)
		defer cancel()
		if err := app.Start(startCtx); err != nil {
			return errors.Wrap(err, "start seed app")
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
			defer cancel()
			_ = app.Stop(stopCtx)
		}()

		return runSeed(cmd.Context(), params)
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedAdminEmail, "admin-email", "", "also create a verified admin account with this email")
	seedCmd.Flags().StringVar(&seedAdminPassword, "admin-password", "", "password for the admin account")
}

type seedParams struct {
	fx.In

	MentorUC    usecase.MentorUsecase
	RoadmapUC   usecase.RoadmapUsecase
	MentorRepo  repository.MentorRepository
	RoadmapRepo repository.RoadmapRepository
	UserRepo    repository.UserRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

func runSeed(ctx context.Context, params seedParams) error {
	if err := seedMentors(ctx, params); err != nil {
		return err
	}
	if err := seedRoadmaps(ctx, params); err != nil {
		return err
	}
	if seedAdminEmail != "" {
		return seedAdmin(ctx, params)
	}

	return nil
}

func seedMentors(ctx context.Context, params seedParams) error {
	count, err := params.MentorRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "count mentors")
	}
	if count > 0 {
		params.Logger.Info("Mentors already present, skipping", slog.Int64("count", count))

		return nil
	}

	for _, input := range sampleMentors {
		mentor, err := params.MentorUC.Add(ctx, input)
		if err != nil {
			return errors.Wrapf(err, "seed mentor %s", input.Name)
		}
		params.Logger.Info("Seeded mentor", slog.String("name", mentor.Name), slog.String("domain", mentor.Domain))
	}

	return nil
}

func seedRoadmaps(ctx context.Context, params seedParams) error {
	existing, err := params.RoadmapRepo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "list roadmaps")
	}
	if len(existing) > 0 {
		params.Logger.Info("Roadmaps already present, skipping", slog.Int("count", len(existing)))

		return nil
	}

	for _, input := range sampleRoadmaps {
		roadmap, err := params.RoadmapUC.Create(ctx, input)
		if err != nil {
			return errors.Wrapf(err, "seed roadmap %s", input.Title)
		}
		params.Logger.Info("Seeded roadmap", slog.String("title", roadmap.Title), slog.Int("steps", roadmap.TotalSteps))
	}

	return nil
}

func seedAdmin(ctx context.Context, params seedParams) error {
	email := entity.NormalizeEmail(seedAdminEmail)
	if seedAdminPassword == "" {
		return errors.New("--admin-password is required with --admin-email")
	}

	_, err := params.UserRepo.FindByEmail(ctx, email)
	if err == nil {
		params.Logger.Info("Admin already present, skipping", slog.String("email", email))

		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "find admin")
	}

	hash, err := params.Hasher.Hash(seedAdminPassword)
	if err != nil {
		return errors.Wrap(err, "hash admin password")
	}

	admin := &entity.User{
		Email:          email,
		PasswordHash:   hash,
		FullName:       "Administrator",
		Role:           entity.RoleAdmin,
		DomainInterest: []string{},
		IsVerified:     true,
	}
	if err := params.UserRepo.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "create admin")
	}
	params.Logger.Info("Seeded admin", slog.String("email", email))

	return nil
}

var sampleMentors = []*usecase.AddMentorInput{
	{
		Name:         "Priya Sharma",
		Title:        "Senior Frontend Engineer",
		Company:      "Flipkart",
		Rating:       4.8,
		Skills:       []string{"React", "TypeScript", "CSS"},
		Domain:       "Web Development",
		HourlyRate:   45,
		Bio:          "Builds design systems and mentors engineers moving into frontend.",
		Experience:   8,
		Availability: "Weekends",
		Languages:    []string{"English", "Hindi"},
		Education:    []string{"B.Tech, IIT Delhi"},
	},
	{
		Name:         "Marcus Chen",
		Title:        "Machine Learning Engineer",
		Company:      "DeepMind",
		Rating:       4.9,
		Skills:       []string{"Python", "PyTorch", "MLOps"},
		Domain:       "AI/ML",
		HourlyRate:   60,
		Bio:          "Works on model training infrastructure and applied research.",
		Experience:   6,
		Availability: "Weekday evenings",
		Languages:    []string{"English", "Mandarin"},
		Education:    []string{"MSc Computer Science, Stanford"},
	},
	{
		Name:         "Sofia Alvarez",
		Title:        "Cloud Architect",
		Company:      "Amazon Web Services",
		Rating:       4.7,
		Skills:       []string{"AWS", "Kubernetes", "Terraform"},
		Domain:       "Cloud Computing",
		HourlyRate:   55,
		Bio:          "Designs multi-region platforms and helps teams plan migrations.",
		Experience:   10,
		Availability: "Flexible",
		Languages:    []string{"English", "Spanish"},
		Education:    []string{"BSc Computer Engineering, UPM"},
	},
}

var sampleRoadmaps = []*usecase.CreateRoadmapInput{
	{
		Title:       "Frontend Developer",
		Description: "From HTML basics to shipping a React application.",
		Category:    "Web Development",
		Duration:    "6 months",
		Difficulty:  entity.DifficultyBeginner,
		Steps: []entity.RoadmapStep{
			{
				Title:       "HTML and CSS",
				Description: "Semantic markup, layout and responsive design.",
				Resources: []entity.RoadmapResource{
					{Name: "MDN Web Docs", URL: "https://developer.mozilla.org/en-US/docs/Learn", Type: "documentation"},
				},
			},
			{
				Title:       "JavaScript",
				Description: "Language fundamentals, the DOM and async programming.",
				Resources: []entity.RoadmapResource{
					{Name: "javascript.info", URL: "https://javascript.info", Type: "tutorial"},
				},
			},
			{
				Title:       "React",
				Description: "Components, state and data fetching.",
				Resources: []entity.RoadmapResource{
					{Name: "React docs", URL: "https://react.dev/learn", Type: "documentation"},
				},
			},
		},
	},
	{
		Title:       "Machine Learning Engineer",
		Description: "Math foundations through training and deploying models.",
		Category:    "AI/ML",
		Duration:    "9 months",
		Difficulty:  entity.DifficultyIntermediate,
		Steps: []entity.RoadmapStep{
			{
				Title:       "Python and NumPy",
				Description: "Scientific Python for data work.",
				Resources: []entity.RoadmapResource{
					{Name: "NumPy user guide", URL: "https://numpy.org/doc/stable/user/", Type: "documentation"},
				},
			},
			{
				Title:       "Classical ML",
				Description: "Regression, trees and model evaluation.",
				Resources: []entity.RoadmapResource{
					{Name: "scikit-learn tutorials", URL: "https://scikit-learn.org/stable/tutorial/", Type: "tutorial"},
				},
			},
			{
				Title:       "Deep Learning",
				Description: "Neural networks with PyTorch.",
				Resources: []entity.RoadmapResource{
					{Name: "PyTorch tutorials", URL: "https://pytorch.org/tutorials/", Type: "tutorial"},
				},
			},
		},
	},
	{
		Title:       "Cloud Engineer",
		Description: "Running production workloads on a public cloud.",
		Category:    "Cloud Computing",
		Duration:    "6 months",
		Difficulty:  entity.DifficultyAdvanced,
		Steps: []entity.RoadmapStep{
			{
				Title:       "Linux and Networking",
				Description: "Shell, processes, TCP/IP and DNS.",
				Resources: []entity.RoadmapResource{
					{Name: "Linux Journey", URL: "https://linuxjourney.com", Type: "course"},
				},
			},
			{
				Title:       "Containers and Kubernetes",
				Description: "Packaging services and orchestrating them.",
				Resources: []entity.RoadmapResource{
					{Name: "Kubernetes docs", URL: "https://kubernetes.io/docs/tutorials/", Type: "documentation"},
				},
			},
		},
	},
}
