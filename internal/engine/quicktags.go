package engine

import (
	"strings"

	"github.com/kolecko-ai/travel-assistant/internal/model"
)

// QuickTags returns contextual shortcut chips for the UI to show above the
// input, based on what the assistant said last.
func (e *Engine) QuickTags(history []model.Message) []model.QuickTag {
	if len(history) == 0 {
		return nil
	}
	last := history[len(history)-1]
	if last.Sender != model.SenderBot {
		return nil
	}
	lastText := Normalize(last.Text)

	if strings.Contains(lastText, "pomoz mi pochopit") || strings.Contains(lastText, "udelal chybku") {
		return []model.QuickTag{
			{Label: "💰 Příliš drahé", Value: "Příliš drahé"},
			{Label: "📍 Moc daleko", Value: "Moc daleko"},
			{Label: "📋 Málo nabídek", Value: "Málo nabídek"},
		}
	}

	if strings.Contains(lastText, "beru si to k srdci") || strings.Contains(lastText, "zkusil znovu") {
		return []model.QuickTag{
			{Label: "👍 Ano", Value: "Ano"},
		}
	}

	if strings.Contains(lastText, "kolik vas") || strings.Contains(lastText, "kolik") ||
		strings.Contains(lastText, "kdy chces") || strings.Contains(lastText, "termin") ||
		strings.Contains(lastText, "stravovan") || strings.Contains(lastText, "jake stravovan") ||
		strings.Contains(lastText, "vybaveni hotel") ||
		strings.Contains(lastText, "potrebuji vedet") {
		return []model.QuickTag{
			{Label: "🤷 Je mi to jedno", Value: "Je mi to jedno"},
		}
	}

	if DealsWereShown(history) {
		return []model.QuickTag{
			{Label: "🗺️ Chci výlety v okolí", Value: "Chci výlety v okolí"},
			{Label: "📦 Více nabídek", Value: "Další nabídky"},
		}
	}

	return nil
}
