package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/twistedcolors/storefront/internal/storefront"
	"github.com/twistedcolors/storefront/internal/tui/shop"
)

func newShopCmd(flags *rootFlags) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Open the interactive storefront",
		Long:  `Open the interactive storefront. --section picks the first screen: home, shop, about or contact.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShop(cmd, flags, section)
		},
	}

	cmd.Flags().StringVarP(&section, "section", "s", "", "Section to open first (default from settings)")

	return cmd
}

func runShop(cmd *cobra.Command, flags *rootFlags, section string) error {
	app, err := newAppContext(cmd, flags, "open storefront", true)
	if err != nil {
		return err
	}
	defer app.Close()

	model, err := newShopModel(app, section)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}
	if app.settings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	app.log.Info("storefront opened")
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		app.log.Error(err, "storefront execution failed")
		return fmt.Errorf("failed to run storefront: %w", err)
	}

	if m, ok := final.(shop.Model); ok {
		s := m.State()
		app.log.WithFields(map[string]any{
			"cart_lines": s.Cart.Len(),
			"cart_items": s.Cart.ItemCount(),
			"cart_total": s.Cart.Total().StringFixed(2),
		}).Info("storefront closed")
	}
	return nil
}

// newShopModel builds the storefront model positioned at section, falling
// back to the configured initial section.
func newShopModel(app *appContext, section string) (shop.Model, error) {
	if section == "" {
		section = app.settings.InitialSection
	}
	start, err := storefront.ParseSection(section)
	if err != nil {
		return shop.Model{}, newCommandError("open storefront", "choosing the first section", err, "Use one of home, shop, about or contact.")
	}

	store := storefront.NewStore(app.catalog, app.log)
	if start != storefront.SectionHome {
		if err := store.Dispatch(storefront.Navigate{Section: start}); err != nil {
			return shop.Model{}, newCommandError("open storefront", "choosing the first section", err, "Product pages are opened from the shop; start at shop instead.")
		}
	}

	return shop.NewModel(store, shop.Options{
		Currency:    app.settings.Currency,
		ASCII:       app.settings.ASCII,
		AckDuration: app.settings.AckDuration,
		Logger:      app.log,
	}), nil
}
