package main

import (
	"fmt"
	"log"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/blobstore"
	"github.com/beka-birhanu/vinom-maze/infrastruture/formatter"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	dir          string
	maxDimension int
	verbose      bool
}

type sizeFlags struct {
	width  int
	height int
	seed   int64
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:           "mazectl",
		Short:         "Generate, render and store orthogonal mazes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.dir, "dir", ".", "directory mazes are saved to and loaded from")
	root.PersistentFlags().IntVar(&g.maxDimension, "max-dimension", 100, "largest accepted width or height")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log service activity to stderr")

	newService := func(cmd *cobra.Command) (*service.MazeService, error) {
		c := &service.Config{
			Store:        blobstore.NewFileStore(fs, g.dir),
			MaxDimension: g.maxDimension,
		}
		if g.verbose {
			c.Logger = log.New(cmd.ErrOrStderr(), config.ColorMagenta+"[MAZECTL] "+config.ColorReset, log.LstdFlags)
		}
		return service.NewMazeService(c)
	}

	root.AddCommand(
		newRenderCmd(newService),
		newSaveCmd(newService),
		newShowCmd(newService),
	)
	return root
}

func addSizeFlags(cmd *cobra.Command, s *sizeFlags) {
	cmd.Flags().IntVar(&s.width, "width", 10, "number of columns")
	cmd.Flags().IntVar(&s.height, "height", 10, "number of rows")
	cmd.Flags().Int64Var(&s.seed, "seed", 0, "random seed; 0 picks one from the clock")
}

func (s *sizeFlags) resolvedSeed() int64 {
	if s.seed == 0 {
		return time.Now().UnixNano()
	}
	return s.seed
}

type serviceFactory func(*cobra.Command) (*service.MazeService, error)

func newRenderCmd(newService serviceFactory) *cobra.Command {
	var size sizeFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Generate a maze and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			m, err := svc.Create(size.width, size.height, size.resolvedSeed())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), m.String())
			return err
		},
	}
	addSizeFlags(cmd, &size)
	return cmd
}

func newSaveCmd(newService serviceFactory) *cobra.Command {
	var (
		size   sizeFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "save [name]",
		Short: "Generate a maze and save it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			m, err := svc.Create(size.width, size.height, size.resolvedSeed())
			if err != nil {
				return err
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			}
			path, err := svc.Save(m, name, format)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	addSizeFlags(cmd, &size)
	cmd.Flags().StringVarP(&format, "format", "f", formatter.YAMLFormat, "output format: text, yaml or pb")
	return cmd
}

func newShowCmd(newService serviceFactory) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show name",
		Short: "Load a saved maze and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			m, _, err := svc.Load(args[0], format)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprint(out, m.String()); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "valid: %t\n", m.IsValid())
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatter.YAMLFormat, "stored format: yaml or pb")
	return cmd
}
