package ui

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"github.com/snowland-wm/snowland/pkg/depcheck"
	"github.com/snowland-wm/snowland/pkg/errors"
	"github.com/snowland-wm/snowland/pkg/types"
	"github.com/snowland-wm/snowland/pkg/ui/styles"
)

// Renderer formats command results for one output format.
type Renderer interface {
	RenderDepReport(result depcheck.Result) string
	RenderInstallSummary(result *types.InstallResult) string
	RenderError(err error) string
}

// NewRenderer returns the renderer for the (already resolved) format.
func NewRenderer(format Format) Renderer {
	switch format {
	case FormatJSON:
		return &JSONRenderer{}
	case FormatTerminal:
		return &TerminalRenderer{}
	default:
		return &PlainRenderer{}
	}
}

// TerminalRenderer renders styled output for interactive terminals.
type TerminalRenderer struct{}

func (r *TerminalRenderer) RenderDepReport(result depcheck.Result) string {
	if result.OK() {
		return styles.GetStyle("Success").Render("All required tools are installed")
	}

	var b strings.Builder
	b.WriteString(styles.GetStyle("Header").Render("Missing dependencies") + "\n")

	for _, tool := range result.MissingTools {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			pterm.Error.Prefix.Text,
			styles.GetStyle("Tool").Render(tool.Command),
			styles.GetStyle("Muted").Render("(install "+tool.Package+")")))
	}
	for _, group := range result.MissingGroups {
		alts := make([]string, 0, len(group.Any))
		for _, alt := range group.Any {
			alts = append(alts, alt.Command)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			pterm.Warning.Prefix.Text,
			styles.GetStyle("Tool").Render(group.Name),
			styles.GetStyle("Muted").Render("(any of: "+strings.Join(alts, ", ")+")")))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (r *TerminalRenderer) RenderInstallSummary(result *types.InstallResult) string {
	var b strings.Builder
	b.WriteString(styles.GetStyle("Header").Render("Installed configs") + "\n")

	for _, item := range result.Items {
		switch item.Status {
		case types.ItemInstalled:
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				styles.GetStyle("Success").Render("✓"),
				item.Item.Name,
				styles.GetStyle("FilePath").Render(item.Item.Dest)))
		case types.ItemSkipped:
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				styles.GetStyle("Warning").Render("-"),
				item.Item.Name,
				styles.GetStyle("Muted").Render("skipped, bundled source missing")))
		}
	}

	if result.BackupRoot != "" {
		b.WriteString(styles.GetStyle("Info").Render(
			"Previous configs saved under "+result.BackupRoot) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, styles.GetStyle("Error").Render(err.Error()))
}

// PlainRenderer renders unstyled text for pipes and NO_COLOR terminals.
type PlainRenderer struct{}

func (r *PlainRenderer) RenderDepReport(result depcheck.Result) string {
	if result.OK() {
		return "All required tools are installed"
	}

	var b strings.Builder
	b.WriteString("Missing dependencies:\n")
	for _, tool := range result.MissingTools {
		b.WriteString(fmt.Sprintf("  %s (install %s)\n", tool.Command, tool.Package))
	}
	for _, group := range result.MissingGroups {
		alts := make([]string, 0, len(group.Any))
		for _, alt := range group.Any {
			alts = append(alts, alt.Command)
		}
		b.WriteString(fmt.Sprintf("  %s (any of: %s)\n", group.Name, strings.Join(alts, ", ")))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *PlainRenderer) RenderInstallSummary(result *types.InstallResult) string {
	var b strings.Builder
	for _, item := range result.Items {
		switch item.Status {
		case types.ItemInstalled:
			b.WriteString(fmt.Sprintf("installed %s -> %s\n", item.Item.Name, item.Item.Dest))
		case types.ItemSkipped:
			b.WriteString(fmt.Sprintf("skipped %s (bundled source missing)\n", item.Item.Name))
		}
	}
	if result.BackupRoot != "" {
		b.WriteString(fmt.Sprintf("backups: %s\n", result.BackupRoot))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return "Error: " + err.Error()
}

// JSONRenderer renders machine-readable output.
type JSONRenderer struct{}

type jsonDepReport struct {
	OK            bool     `json:"ok"`
	MissingTools  []string `json:"missing_tools"`
	MissingGroups []string `json:"missing_groups"`
}

func (r *JSONRenderer) RenderDepReport(result depcheck.Result) string {
	report := jsonDepReport{
		OK:            result.OK(),
		MissingTools:  []string{},
		MissingGroups: []string{},
	}
	for _, tool := range result.MissingTools {
		report.MissingTools = append(report.MissingTools, tool.Command)
	}
	for _, group := range result.MissingGroups {
		report.MissingGroups = append(report.MissingGroups, group.Name)
	}
	data, _ := json.MarshalIndent(report, "", "  ")
	return string(data)
}

type jsonInstallItem struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Dest   string `json:"dest"`
	Backup string `json:"backup,omitempty"`
}

type jsonInstallSummary struct {
	BackupRoot string            `json:"backup_root,omitempty"`
	Items      []jsonInstallItem `json:"items"`
}

func (r *JSONRenderer) RenderInstallSummary(result *types.InstallResult) string {
	summary := jsonInstallSummary{BackupRoot: result.BackupRoot, Items: []jsonInstallItem{}}
	for _, item := range result.Items {
		status := "installed"
		if item.Status == types.ItemSkipped {
			status = "skipped"
		}
		backup := ""
		if item.BackupPath != "" {
			backup = filepath.Clean(item.BackupPath)
		}
		summary.Items = append(summary.Items, jsonInstallItem{
			Name:   item.Item.Name,
			Status: status,
			Dest:   item.Item.Dest,
			Backup: backup,
		})
	}
	data, _ := json.MarshalIndent(summary, "", "  ")
	return string(data)
}

func (r *JSONRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	payload := map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	}
	data, _ := json.Marshal(payload)
	return string(data)
}
