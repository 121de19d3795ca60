/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/unikorn-cloud/petfriends/pkg/log"
	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

var (
	errMissingCredentials = errors.New("email and password are required")
	errUnsuccessful       = errors.New("request was not successful")
	errInvalidFilter      = errors.New("invalid filter")
)

// options are the global settings after flags, environment and .env are merged.
type options struct {
	baseURL  string
	email    string
	password string
	logLevel string
	output   outputFormat
	timeout  time.Duration
}

// clientFactory builds the client once options are known.
type clientFactory func(options *options, logger *zap.Logger) petfriends.Interface

func newClient(options *options, logger *zap.Logger) petfriends.Interface {
	return petfriends.New(options.baseURL,
		petfriends.WithTimeout(options.timeout),
		petfriends.WithLogger(logger),
		petfriends.WithRequestLogging(true),
	)
}

type app struct {
	options options
	config  *viper.Viper
	factory clientFactory
	client  petfriends.Interface
	logger  *zap.Logger
}

func newRootCommand(factory clientFactory) *cobra.Command {
	a := &app{
		config:  viper.New(),
		factory: factory,
	}

	cmd := &cobra.Command{
		Use:   "petfriends",
		Short: "Drive the PetFriends API from the command line",
		Long: `petfriends calls the PetFriends REST API with the given account.

Every flag can also be set in the environment with a PETFRIENDS_ prefix,
for example PETFRIENDS_EMAIL or PETFRIENDS_BASE_URL, or in a .env file in
the working directory.

The process exits with status 1 when the service does not answer 200.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.String("base-url", petfriends.DefaultBaseURL, "PetFriends service root")
	flags.String("email", "", "account email")
	flags.String("password", "", "account password")
	flags.String("log-level", "warn", "log level, one of debug, info, warn or error")
	flags.StringP("output", "o", string(outputJSON), "output format, one of json, yaml or table")
	flags.Duration("timeout", petfriends.DefaultTimeout, "per request timeout")

	if err := a.config.BindPFlags(flags); err != nil {
		panic(err)
	}

	a.config.SetEnvPrefix("PETFRIENDS")
	a.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.config.AutomaticEnv()

	cmd.AddCommand(
		a.keyCommand(),
		a.listCommand(),
		a.createCommand(),
		a.photoCommand(),
		a.updateCommand(),
		a.deleteCommand(),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	// A missing .env is normal.
	_ = godotenv.Load()

	output, err := parseOutputFormat(a.config.GetString("output"))
	if err != nil {
		return err
	}

	a.options = options{
		baseURL:  a.config.GetString("base-url"),
		email:    a.config.GetString("email"),
		password: a.config.GetString("password"),
		logLevel: a.config.GetString("log-level"),
		output:   output,
		timeout:  a.config.GetDuration("timeout"),
	}

	logger, err := log.New(log.Options{
		Level:    a.options.logLevel,
		Encoding: log.EncodingConsole,
		Output:   cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	a.logger = logger
	a.client = a.factory(&a.options, logger)

	return nil
}

func (a *app) credentials() (petfriends.Credentials, error) {
	if a.options.email == "" || a.options.password == "" {
		return petfriends.Credentials{}, errMissingCredentials
	}

	return petfriends.Credentials{
		Email:    a.options.email,
		Password: a.options.password,
	}, nil
}

// authKey logs in, printing the refusal when the service does not issue a key.
func (a *app) authKey(cmd *cobra.Command) (petfriends.AuthKey, error) {
	credentials, err := a.credentials()
	if err != nil {
		return petfriends.AuthKey{}, err
	}

	result, err := a.client.GetAPIKey(cmd.Context(), credentials)
	if err != nil {
		return petfriends.AuthKey{}, err
	}

	if !result.Succeeded() || result.Value == nil {
		if err := report(cmd.OutOrStdout(), a.options.output, result); err != nil {
			return petfriends.AuthKey{}, fmt.Errorf("getting api key: %w", err)
		}

		return petfriends.AuthKey{}, fmt.Errorf("%w: api key was not issued", errUnsuccessful)
	}

	a.logger.Debug("api key issued", zap.String("email", a.options.email))

	return *result.Value, nil
}

func (a *app) keyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "key",
		Short: "Print an auth key for the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			credentials, err := a.credentials()
			if err != nil {
				return err
			}

			result, err := a.client.GetAPIKey(cmd.Context(), credentials)
			if err != nil {
				return err
			}

			return report(cmd.OutOrStdout(), a.options.output, result)
		},
	}
}

func (a *app) listCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pets, optionally only your own",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := petfriends.Filter(filter)
			if f != petfriends.FilterAll && f != petfriends.FilterMyPets {
				return fmt.Errorf("%w %q, expected %q or nothing", errInvalidFilter, filter, petfriends.FilterMyPets)
			}

			key, err := a.authKey(cmd)
			if err != nil {
				return err
			}

			result, err := a.client.ListPets(cmd.Context(), key, f)
			if err != nil {
				return err
			}

			return report(cmd.OutOrStdout(), a.options.output, result)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "set to my_pets to list only your pets")

	return cmd
}

func addDetailsFlags(flags *pflag.FlagSet, details *petfriends.PetDetails) {
	flags.StringVar(&details.Name, "name", "", "pet name")
	flags.StringVar(&details.AnimalType, "type", "", "animal type")
	flags.StringVar(&details.Age, "age", "", "age in years")
}

func mustMarkRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}

func (a *app) createCommand() *cobra.Command {
	var (
		details petfriends.PetDetails
		photo   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a pet, with a photo when --photo is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := a.authKey(cmd)
			if err != nil {
				return err
			}

			var result *petfriends.Result[petfriends.Pet]

			if photo != "" {
				result, err = a.client.AddNewPet(cmd.Context(), key, details, photo)
			} else {
				result, err = a.client.CreatePetSimple(cmd.Context(), key, details)
			}

			if err != nil {
				return err
			}

			return report(cmd.OutOrStdout(), a.options.output, result)
		},
	}

	addDetailsFlags(cmd.Flags(), &details)
	cmd.Flags().StringVar(&photo, "photo", "", "path to a JPEG or PNG photo")
	mustMarkRequired(cmd, "name", "type", "age")

	return cmd
}

func (a *app) photoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "photo <pet-id> <path>",
		Short: "Set the photo of a pet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.authKey(cmd)
			if err != nil {
				return err
			}

			result, err := a.client.SetPhoto(cmd.Context(), key, args[0], args[1])
			if err != nil {
				return err
			}

			return report(cmd.OutOrStdout(), a.options.output, result)
		},
	}
}

func (a *app) updateCommand() *cobra.Command {
	var details petfriends.PetDetails

	cmd := &cobra.Command{
		Use:   "update <pet-id>",
		Short: "Change the name, type and age of a pet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.authKey(cmd)
			if err != nil {
				return err
			}

			result, err := a.client.UpdatePetInfo(cmd.Context(), key, args[0], details)
			if err != nil {
				return err
			}

			return report(cmd.OutOrStdout(), a.options.output, result)
		},
	}

	addDetailsFlags(cmd.Flags(), &details)
	mustMarkRequired(cmd, "name", "type", "age")

	return cmd
}

func (a *app) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <pet-id>",
		Short: "Delete a pet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.authKey(cmd)
			if err != nil {
				return err
			}

			result, err := a.client.DeletePet(cmd.Context(), key, args[0])
			if err != nil {
				return err
			}

			return report(cmd.OutOrStdout(), a.options.output, result)
		},
	}
}
