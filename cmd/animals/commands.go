package main

import (
	"bufio"
	"bytes"
	"context"
	stdjson "encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	jsoniter "github.com/json-iterator/go"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/graph-gophers/animals/config"
	"github.com/graph-gophers/animals/log"
	"github.com/graph-gophers/animals/resolvers"
	"github.com/graph-gophers/animals/server"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	root := &cobra.Command{
		Use:           "animals",
		Short:         "A GraphQL API over an in-memory zoo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&o.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(newStartCmd(o), newSchemaCmd(), newQueryCmd(o))
	return root
}

// load reads the config file and applies the global flags.
func (o *rootOptions) load() (*config.Config, error) {
	c, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		c.Log.Level = o.logLevel
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func newStartCmd(o *rootOptions) *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "start [port]",
		Short: "Start the GraphQL server",
		Long: `Start the GraphQL server on the given port, 4000 unless configured
otherwise. The server stops on SIGINT, SIGTERM, or Enter when attached to a
terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.load()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if err := c.SetPort(args[0]); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("pretty") {
				c.Pretty = pretty
			}

			logger, err := log.New(c.Log)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s, err := server.New(ctx, c, logger)
			if err != nil {
				return err
			}

			if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				fmt.Fprintf(cmd.OutOrStdout(), "Server ready at http://localhost%s%s\nPress Enter to exit\n", c.Addr, c.Endpoint)
				go func() {
					if _, err := bufio.NewReader(os.Stdin).ReadString('\n'); err == nil {
						logger.Info("exit requested from terminal")
					}
					stop()
				}()
			}
			return s.Run(ctx)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON responses")
	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the GraphQL schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sdl := strings.ReplaceAll(strings.TrimSpace(resolvers.Schema), "\n\t", "\n")
			_, err := fmt.Fprintln(cmd.OutOrStdout(), sdl)
			return err
		},
	}
}

func newQueryCmd(o *rootOptions) *cobra.Command {
	var variables, operation string
	cmd := &cobra.Command{
		Use:   "query <query>",
		Short: "Run one query against a freshly seeded zoo and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			c, err := o.load()
			if err != nil {
				return err
			}

			var vars map[string]interface{}
			if variables != "" {
				if err := json.UnmarshalFromString(variables, &vars); err != nil {
					return fmt.Errorf("invalid --variables: %w", err)
				}
			}

			s, err := server.New(cmd.Context(), c, zap.NewNop(), server.WithTraceOutput(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
				defer cancel()
				if cerr := s.Close(ctx); cerr != nil && err == nil {
					err = fmt.Errorf("flush traces: %w", cerr)
				}
			}()
			res := s.Schema().Exec(cmd.Context(), args[0], operation, vars)

			b, err := json.Marshal(res)
			if err != nil {
				return err
			}
			// data is already encoded, so indent the whole document at once
			var out bytes.Buffer
			if err := stdjson.Indent(&out, b, "", "  "); err != nil {
				return err
			}
			out.WriteByte('\n')
			if _, err := out.WriteTo(cmd.OutOrStdout()); err != nil {
				return err
			}
			if len(res.Errors) > 0 {
				return fmt.Errorf("query returned %d error(s)", len(res.Errors))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&variables, "variables", "", "query variables as a JSON object")
	cmd.Flags().StringVar(&operation, "operation", "", "operation to run when the query holds several")
	return cmd
}
