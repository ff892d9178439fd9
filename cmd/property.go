package cmd

import (
	"fmt"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/spf13/cobra"
)

func newPropertyCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "property",
		Aliases: []string{"properties"},
		Short:   "Manage property listings",
		Annotations: map[string]string{
			sessionRequiredAnnotation: "true",
		},
	}

	cmd.AddCommand(
		newPropertyListCmd(app),
		newPropertyShowCmd(app),
		newPropertyAddCmd(app),
		newPropertyUpdateCmd(app),
		newPropertyDeleteCmd(app),
	)

	return cmd
}

func (a *app) fetchProperties(cmd *cobra.Command) error {
	return a.fetch(cmd, "Fetching properties...", a.container.Properties.Fetch, propertiesSource(a.container.Properties))
}

func newPropertyListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.fetchProperties(cmd); err != nil {
				return err
			}
			state := app.container.Properties.State()
			return app.presenter.Properties(state.Items, state.SelectedID)
		},
	}
}

func newPropertyShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one property (default: the first listed)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.fetchProperties(cmd); err != nil {
				return err
			}

			store := app.container.Properties
			if len(args) == 1 {
				store.SetSelected(domain.PropertyID(args[0]))
			}
			property, err := store.Selected()
			if err != nil {
				return err
			}
			return app.presenter.Property(property)
		},
	}
}

type propertyFlags struct {
	title        string
	description  string
	price        float64
	location     string
	propertyType string
	beds         float64
	baths        float64
	sqft         float64
	address      string
}

func (f *propertyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Listing title")
	cmd.Flags().StringVar(&f.description, "description", "", "Listing description")
	cmd.Flags().Float64Var(&f.price, "price", 0, "Price in AED")
	cmd.Flags().StringVar(&f.location, "location", "", "Location, for example Dubai Marina")
	cmd.Flags().StringVar(&f.propertyType, "type", "", "Property type, for example apartment or villa")
	cmd.Flags().Float64Var(&f.beds, "beds", 0, "Number of bedrooms")
	cmd.Flags().Float64Var(&f.baths, "baths", 0, "Number of bathrooms")
	cmd.Flags().Float64Var(&f.sqft, "sqft", 0, "Area in square feet")
}

func (f *propertyFlags) draft(cmd *cobra.Command) domain.PropertyDraft {
	return domain.PropertyDraft{
		Title:        f.title,
		Description:  f.description,
		Price:        changedFloat(cmd, "price", f.price),
		Location:     f.location,
		PropertyType: f.propertyType,
		Beds:         changedFloat(cmd, "beds", f.beds),
		Baths:        changedFloat(cmd, "baths", f.baths),
		Sqft:         changedFloat(cmd, "sqft", f.sqft),
		Address:      f.address,
	}
}

func (f *propertyFlags) patch(cmd *cobra.Command) domain.PropertyPatch {
	return domain.PropertyPatch{
		Title:        changedString(cmd, "title", f.title),
		Description:  changedString(cmd, "description", f.description),
		Price:        changedFloat(cmd, "price", f.price),
		Location:     changedString(cmd, "location", f.location),
		PropertyType: changedString(cmd, "type", f.propertyType),
		Beds:         changedFloat(cmd, "beds", f.beds),
		Baths:        changedFloat(cmd, "baths", f.baths),
		Sqft:         changedFloat(cmd, "sqft", f.sqft),
	}
}

func newPropertyAddCmd(app *app) *cobra.Command {
	var flags propertyFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a property listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			property, err := app.container.Properties.Add(cmd.Context(), flags.draft(cmd))
			if err != nil {
				return err
			}
			return app.presenter.Result(property, fmt.Sprintf("Added property %s (%s)", property.ID, property.Title))
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.address, "address", "", "Street address")

	return cmd
}

func newPropertyUpdateCmd(app *app) *cobra.Command {
	var flags propertyFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a property listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			property, err := app.container.Properties.Update(cmd.Context(), domain.PropertyID(args[0]), flags.patch(cmd))
			if err != nil {
				return err
			}
			return app.presenter.Result(property, fmt.Sprintf("Updated property %s (%s)", property.ID, property.Title))
		},
	}

	flags.register(cmd)

	return cmd
}

func newPropertyDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a property listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.PropertyID(args[0])
			if err := app.container.Properties.Delete(cmd.Context(), id); err != nil {
				return err
			}
			return app.presenter.Result(map[string]string{"deleted": string(id)}, fmt.Sprintf("Deleted property %s", id))
		},
	}
}
