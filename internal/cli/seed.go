package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/quickcut/internal/seed"
	"github.com/BruksfildServices01/quickcut/internal/server"
	"github.com/BruksfildServices01/quickcut/internal/timezone"
)

func newSeedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample shop data",
		Long: `Load two barbers, two services, two customers and three appointments
dated today. Without --force nothing happens if appointments already exist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := *cfg
			c.SeedSampleData = false

			app, err := server.Bootstrap(cmd.Context(), &c)
			if err != nil {
				return err
			}
			defer app.Close()

			settings, err := app.Repo.GetSettings(cmd.Context())
			if err != nil {
				return err
			}
			today := timezone.Today(settings.Timezone)
			now := timezone.NowIn(settings.Timezone)

			if force {
				if err := app.Repo.Import(cmd.Context(), seed.Sample(today, now)); err != nil {
					return fmt.Errorf("import sample data: %w", err)
				}
				fmt.Fprintf(out(cmd), "sample data replaced the existing shop data (%s)\n", today)
				return nil
			}

			loaded, err := seed.IfEmpty(cmd.Context(), app.Repo, today, now)
			if err != nil {
				return err
			}
			if !loaded {
				fmt.Fprintln(out(cmd), "appointments already exist, nothing seeded (use --force to overwrite)")
				return nil
			}
			fmt.Fprintf(out(cmd), "sample data loaded (%s)\n", today)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "replace existing data with the sample set")
	return cmd
}
