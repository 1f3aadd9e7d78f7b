package main

import (
	"context"
	"fmt"

	"github.com/hackernews-graphql-api/internal/models"
	"github.com/hackernews-graphql-api/internal/repository"
	"github.com/spf13/cobra"
)

type seedLink struct {
	description string
	url         string
	comments    []string
}

var seedData = []seedLink{
	{
		description: "GraphQL",
		url:         "https://graphql.org",
		comments:    []string{"A query language for your API", "Nice"},
	},
	{
		description: "The Go Programming Language",
		url:         "https://go.dev",
		comments:    []string{"Simple and fast"},
	},
	{
		description: "Hacker News",
		url:         "https://news.ycombinator.com",
	},
}

func newSeedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample links and comments",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			st, err := openStore(cfg, log)
			if err != nil {
				return err
			}
			defer st.close()

			if err := st.migrateUp(); err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			existing, err := st.repos.Link.Count(ctx)
			if err != nil {
				return err
			}
			if existing > 0 && !force {
				log.Info().Int("links", existing).Msg("Database already seeded, use --force to add the sample data again")
				return nil
			}

			links, comments, err := seed(ctx, st.repos)
			if err != nil {
				return err
			}
			log.Info().Int("links", links).Int("comments", comments).Msg("Seed completed")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "seed even if links already exist")
	return cmd
}

func seed(ctx context.Context, repos *repository.Repositories) (links, comments int, err error) {
	for _, s := range seedData {
		link := &models.Link{Description: s.description, URL: s.url}
		if err := repos.Link.Create(ctx, link); err != nil {
			return links, comments, fmt.Errorf("failed to seed link %q: %w", s.url, err)
		}
		links++

		for _, body := range s.comments {
			if err := repos.Comment.Create(ctx, &models.Comment{Body: body, LinkID: link.ID}); err != nil {
				return links, comments, fmt.Errorf("failed to seed comment on link %d: %w", link.ID, err)
			}
			comments++
		}
	}
	return links, comments, nil
}
