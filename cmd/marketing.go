package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/spf13/cobra"
)

func newMarketingCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "marketing",
		Short: "Browse templates and launch marketing campaigns",
		Annotations: map[string]string{
			sessionRequiredAnnotation: "true",
		},
	}

	cmd.AddCommand(
		newMarketingTemplatesCmd(app),
		newMarketingCampaignCmd(app),
		newMarketingPackageCmd(app),
	)

	return cmd
}

func newMarketingTemplatesCmd(app *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List marketing templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			templates, err := app.container.Marketing.Templates(cmd.Context(), category)
			if err != nil {
				return err
			}
			return app.presenter.Result(templates, templatesSummary(templates))
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only templates of this category")

	return cmd
}

func templatesSummary(templates []domain.TemplateSummary) string {
	if len(templates) == 0 {
		return "No templates."
	}

	lines := make([]string, 0, len(templates))
	for _, template := range templates {
		line := fmt.Sprintf("%d\t%s\t%s/%s", template.ID, template.Name, template.Category, template.Type)
		if template.DubaiSpecific {
			line += "\tdubai"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func newMarketingCampaignCmd(app *app) *cobra.Command {
	var propertyID int64
	var campaignType string
	var templateID int64
	var noAutoContent bool

	cmd := &cobra.Command{
		Use:   "campaign",
		Short: "Create a campaign for a property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			request := domain.CampaignRequest{
				PropertyID:   propertyID,
				CampaignType: domain.CampaignType(campaignType),
			}
			if cmd.Flags().Changed("template") {
				request.TemplateID = &templateID
			}
			if noAutoContent {
				autoGenerate := false
				request.AutoGenerateContent = &autoGenerate
			}

			result, err := app.container.Marketing.CreateCampaign(cmd.Context(), request)
			if err != nil {
				return err
			}
			return app.presenter.Result(result, fmt.Sprintf("Campaign %d %s: %s", result.CampaignID, result.Status, result.Message))
		},
	}

	cmd.Flags().Int64Var(&propertyID, "property", 0, "Property ID")
	cmd.Flags().StringVar(&campaignType, "type", string(domain.CampaignEmailBlast), "Campaign type: postcard, email_blast, social_campaign, flyer")
	cmd.Flags().Int64Var(&templateID, "template", 0, "Template ID")
	cmd.Flags().BoolVar(&noAutoContent, "no-auto-content", false, "Do not let the backend generate the content")
	_ = cmd.MarkFlagRequired("property")

	return cmd
}

func newMarketingPackageCmd(app *app) *cobra.Command {
	var propertyID int64
	var message string
	var skip []string

	cmd := &cobra.Command{
		Use:   "package",
		Short: "Create the full marketing package for a property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			request := domain.PackageRequest{
				PropertyID:    propertyID,
				CustomMessage: message,
			}
			include := false
			for _, part := range skip {
				switch strings.ToLower(strings.TrimSpace(part)) {
				case "postcards":
					request.IncludePostcards = &include
				case "email":
					request.IncludeEmail = &include
				case "social":
					request.IncludeSocial = &include
				case "flyers":
					request.IncludeFlyers = &include
				default:
					return &domain.ValidationError{Field: "skip", Message: "unknown package part " + part}
				}
			}

			result, err := app.container.Marketing.CreateFullPackage(cmd.Context(), request)
			if err != nil {
				return err
			}
			return app.presenter.Result(result, packageSummary(result))
		},
	}

	cmd.Flags().Int64Var(&propertyID, "property", 0, "Property ID")
	cmd.Flags().StringVar(&message, "message", "", "Custom message for every campaign")
	cmd.Flags().StringSliceVar(&skip, "skip", nil, "Parts to leave out: postcards, email, social, flyers")
	_ = cmd.MarkFlagRequired("property")

	return cmd
}

func packageSummary(result domain.PackageResult) string {
	lines := []string{fmt.Sprintf("Package %s for property %d: %s", result.PackageID, result.PropertyID, result.Status)}
	if result.Message != "" {
		lines = append(lines, result.Message)
	}
	for _, kind := range slices.Sorted(maps.Keys(result.Campaigns)) {
		lines = append(lines, fmt.Sprintf("  %s campaign %d", kind, result.Campaigns[kind]))
	}
	if result.NextSteps != "" {
		lines = append(lines, "next: "+result.NextSteps)
	}
	return strings.Join(lines, "\n")
}
