package slack

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/domain/types"
	"github.com/slack-go/slack"
)

// EmployeeSavedText returns the plain-text fallback of a saved-employee message
func EmployeeSavedText(mode types.FormMode, employee *model.Employee) string {
	verb := "created"
	if mode == types.FormModeEdit {
		verb = "updated"
	}
	return fmt.Sprintf("Employee %s: %s <%s>", verb, employee.Name, employee.Email)
}

// BuildEmployeeSavedBlocks builds the blocks announcing a saved employee
func BuildEmployeeSavedBlocks(mode types.FormMode, employee *model.Employee) []slack.Block {
	header := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, "*"+escapeMarkdown(EmployeeSavedText(mode, employee))+"*", false, false),
		nil, nil,
	)

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType, "*Name:*\n"+escapeMarkdown(employee.Name), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, "*Email:*\n"+escapeMarkdown(employee.Email), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, "*Departments:*\n"+escapeMarkdown(departmentNames(employee.Department)), false, false),
	}
	if employee.ID != "" {
		fields = append(fields,
			slack.NewTextBlockObject(slack.MarkdownType, "*ID:*\n"+escapeMarkdown(employee.ID.String()), false, false))
	}

	return []slack.Block{
		header,
		slack.NewSectionBlock(nil, fields, nil),
	}
}

func departmentNames(departments []model.Department) string {
	if len(departments) == 0 {
		return "-"
	}
	names := make([]string, 0, len(departments))
	for _, d := range departments {
		names = append(names, d.Name)
	}
	return strings.Join(names, ", ")
}

var markdownEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
