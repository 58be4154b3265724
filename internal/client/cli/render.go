package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/coinviewer/internal/client/models"
	"github.com/dmitrijs2005/coinviewer/internal/client/viewstate"
	"github.com/dmitrijs2005/coinviewer/internal/results"
)

func renderList(s viewstate.ViewState[models.CoinList]) []string {
	if s.IsRefreshing {
		return []string{"Loading..."}
	}
	return results.Fold(s.Result,
		func(list models.CoinList) []string {
			if len(list) == 0 {
				return []string{"No coins."}
			}
			lines := make([]string, 0, len(list))
			for _, c := range list {
				lines = append(lines, coinLine(c))
			}
			return lines
		},
		func(message string) []string {
			return []string{message}
		},
	)
}

func coinLine(c models.CoinSummary) string {
	line := fmt.Sprintf("%d. %s (%s)", c.Rank, c.Name, c.Symbol)
	if c.IsNew {
		line += " [new]"
	}
	if !c.IsActive {
		line += " [inactive]"
	}
	return line + "  " + c.ID
}

func renderDetail(s viewstate.ViewState[models.CoinDetail]) []string {
	if s.IsRefreshing {
		return []string{"Loading..."}
	}
	return results.Fold(s.Result, detailLines, func(message string) []string {
		return []string{message}
	})
}

func detailLines(d models.CoinDetail) []string {
	lines := []string{fmt.Sprintf("%s (%s)", d.Name, d.Symbol)}

	add := func(label, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("%-12s %s", label+":", value))
		}
	}

	if d.Rank > 0 {
		add("Rank", fmt.Sprint(d.Rank))
	}
	add("Type", d.Type)
	if d.IsActive {
		add("Status", "active")
	} else {
		add("Status", "inactive")
	}
	add("Development", d.DevelopmentStatus)
	add("Started", d.StartedAt)
	add("Algorithm", d.HashAlgorithm)
	add("Proof", d.ProofType)
	add("Website", strings.Join(d.Links.Website, ", "))
	add("Source", strings.Join(d.Links.SourceCode, ", "))
	add("Whitepaper", d.Whitepaper.Link)

	if len(d.Tags) > 0 {
		names := make([]string, 0, len(d.Tags))
		for _, t := range d.Tags {
			names = append(names, t.Name)
		}
		add("Tags", strings.Join(names, ", "))
	}

	if d.Message != "" {
		lines = append(lines, "", d.Message)
	}
	if d.Description != "" {
		lines = append(lines, "", d.Description)
	}

	if len(d.Team) > 0 {
		lines = append(lines, "", "Team:")
		for _, m := range d.Team {
			lines = append(lines, fmt.Sprintf("  %s - %s", m.Name, m.Position))
		}
	}

	return lines
}
