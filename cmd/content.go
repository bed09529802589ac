package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Triaksa-Space/bootcamp-site/domain/content"
	"github.com/Triaksa-Space/bootcamp-site/pkg/secret"
	"github.com/spf13/cobra"
)

func contentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Export or import the site content record",
	}
	cmd.AddCommand(contentExportCmd())
	cmd.AddCommand(contentImportCmd())
	return cmd
}

func contentExportCmd() *cobra.Command {
	var (
		format   string
		override bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the content record",
		Long: `Print the content record as served by GET /api/content.

With --override the stored override is printed as is, without defaults.

Examples:
  bootcamp-site content export --format yaml > content.yaml
  bootcamp-site content export --override`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			store := a.contentStore()

			var v interface{}
			if override {
				o, err := store.Fetch(ctx)
				if err != nil {
					return err
				}
				if o == nil {
					o = &content.Override{}
				}
				v = o
			} else {
				v = store.Load(ctx)
			}

			out, err := content.Encode(v, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", content.FormatJSON, "output format (json, yaml)")
	cmd.Flags().BoolVar(&override, "override", false, "print the stored override instead of the resolved record")

	return cmd
}

func contentImportCmd() *cobra.Command {
	var (
		format   string
		password string
	)

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the stored content with a JSON or YAML file",
		Long: `Validate a content document and write it to the content store.

The document goes through the same checks as POST /api/content/update: the
hero section is required and the admin password must match EDIT_PASSWORD.
When EDIT_PASSWORD holds a bcrypt hash, pass the plain password with
--password.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			raw, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if format == "" {
				format = content.FormatFromPath(path)
			}
			body, err := content.Decode(raw, format)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			password, err = importCredential(password, a.cfg.EditPassword)
			if err != nil {
				return err
			}
			if err := a.contentStore().SaveRaw(ctx, body, password); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s into %q\n", path, a.cfg.ContentKey)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "input format (json, yaml); defaults to the file extension")
	cmd.Flags().StringVar(&password, "password", "", "admin password (defaults to EDIT_PASSWORD)")

	return cmd
}

// importCredential picks the credential for content import. Without
// --password the configured secret is used, which only works when it is
// stored in plain text.
func importCredential(flag, configured string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if secret.NewGuard(configured).Hashed() {
		return "", errors.New("EDIT_PASSWORD holds a bcrypt hash; pass the plain password with --password")
	}
	return configured, nil
}
