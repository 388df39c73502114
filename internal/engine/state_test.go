package engine

import (
	"reflect"
	"testing"

	"github.com/kolecko-ai/travel-assistant/internal/model"
)

func userMsg(text string) model.Message {
	return model.Message{Sender: model.SenderUser, Text: text}
}

func botMsg(text string) model.Message {
	return model.Message{Sender: model.SenderBot, Text: text}
}

func TestExtractFullStateSingleMessage(t *testing.T) {
	text := "Krkonoše, 2 osoby, příští víkend, polopenze, bazén"
	state := ExtractFullState([]model.Message{userMsg(text)})

	if state.Location != "Krkonoše" {
		t.Errorf("Location = %q, want Krkonoše", state.Location)
	}
	if state.People != "2 osoby" {
		t.Errorf("People = %q, want 2 osoby", state.People)
	}
	// The whole-message pass keeps the raw matched text for dates.
	if state.Dates == "" {
		t.Error("Dates empty, want the date phrasing captured")
	}
	if state.Meals != "polopenze" {
		t.Errorf("Meals = %q, want polopenze", state.Meals)
	}
	if state.Amenities != "bazén" {
		t.Errorf("Amenities = %q, want bazén", state.Amenities)
	}
	if len(state.Missing()) != 0 {
		t.Errorf("Missing() = %v, want none", state.Missing())
	}
}

// Later messages overwrite earlier slot values, so users can correct
// themselves mid-conversation.
func TestExtractFullStateLastWriteWins(t *testing.T) {
	history := []model.Message{
		userMsg("Chci jet do Beskyd"),
		botMsg("Beskydy – skvělá volba!"),
		userMsg("vlastně radši Šumava"),
	}

	state := ExtractFullState(history)
	if state.Location != "Šumava" {
		t.Errorf("Location = %q, want %q", state.Location, "Šumava")
	}
}

func TestExtractFullStateAccumulatesAcrossTurns(t *testing.T) {
	history := []model.Message{
		userMsg("Krkonoše"),
		botMsg("Kolik vás pojede?"),
		userMsg("pojedu s partnerkou"),
		botMsg("A kdy chceš jet?"),
		userMsg("v červenci"),
	}

	state := ExtractFullState(history)

	if state.Location != "Krkonoše" {
		t.Errorf("Location = %q, want Krkonoše", state.Location)
	}
	if state.People != "2 osoby" {
		t.Errorf("People = %q, want 2 osoby", state.People)
	}
	if state.Dates != "v červenci" {
		t.Errorf("Dates = %q, want v červenci", state.Dates)
	}

	missing := state.Missing()
	want := []string{SlotMeals, SlotAmenities}
	if !reflect.DeepEqual(missing, want) {
		t.Errorf("Missing() = %v, want %v", missing, want)
	}
}

func TestExtractFullStateIgnoresBotMessages(t *testing.T) {
	history := []model.Message{
		userMsg("Krkonoše"),
		botMsg("Jaké stravování? Třeba polopenze nebo plná penze?"),
	}

	state := ExtractFullState(history)
	if state.Meals != "" {
		t.Errorf("Meals = %q, bot suggestions must not fill slots", state.Meals)
	}
}

func TestExtractFullStateMergesSegmentAmenities(t *testing.T) {
	history := []model.Message{
		userMsg("bazén, sauna a dětský koutek"),
	}

	state := ExtractFullState(history)
	if state.Amenities != "bazén, wellness, dětský koutek" {
		t.Errorf("Amenities = %q, want merged distinct list", state.Amenities)
	}
}

func TestBotAskedFields(t *testing.T) {
	tests := []struct {
		name    string
		botText string
		want    []string
	}{
		{"people question", "Ještě mi řekni, kolik vás pojede? 👥", []string{SlotPeople}},
		{"dates question", "A kdy chceš jet? 📅", []string{SlotDates}},
		{"meals question", "Jaké stravování by ti vyhovovalo?", []string{SlotMeals}},
		{"location question", "Jaká lokalita tě láká?", []string{SlotLocation}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := []model.Message{
				userMsg("Krkonoše"),
				botMsg(tt.botText),
			}
			fields := BotAskedFields(history)
			for _, slot := range tt.want {
				if !fields[slot] {
					t.Errorf("BotAskedFields(%q) missing %s, got %v", tt.botText, slot, fields)
				}
			}
		})
	}
}

func TestBotAskedFieldsEmptyHistory(t *testing.T) {
	if fields := BotAskedFields(nil); len(fields) != 0 {
		t.Errorf("BotAskedFields(nil) = %v, want empty", fields)
	}
	if fields := BotAskedFields([]model.Message{userMsg("ahoj")}); len(fields) != 0 {
		t.Errorf("BotAskedFields with no bot turn = %v, want empty", fields)
	}
}

func TestDealsWereShown(t *testing.T) {
	plain := []model.Message{userMsg("ahoj"), botMsg("Ahoj!")}
	if DealsWereShown(plain) {
		t.Error("DealsWereShown true without deal payloads")
	}

	withDeals := append(plain, model.Message{
		Sender: model.SenderBot,
		Text:   "Tady jsou nabídky:",
		Deals:  []model.Deal{{ID: "d1"}},
	})
	if !DealsWereShown(withDeals) {
		t.Error("DealsWereShown false despite a deal payload")
	}
}

func TestDetectParameterChange(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *ParameterChange
	}{
		{
			"actually rather location",
			"vlastně radši Beskydy",
			&ParameterChange{Slot: SlotLocation, Value: "Beskydy"},
		},
		{
			"explicit change",
			"chci změnit na polopenzi",
			&ParameterChange{Slot: SlotMeals, Value: "polopenze"},
		},
		{
			"change of party",
			"nakonec pojedeme ve dvou",
			&ParameterChange{Slot: SlotPeople, Value: "2 osoby"},
		},
		{
			"signal without value",
			"vlastně nevím",
			nil,
		},
		{
			"value without signal",
			"Beskydy",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectParameterChange(tt.text)
			if tt.want == nil {
				if got != nil {
					t.Errorf("DetectParameterChange(%q) = %+v, want nil", tt.text, got)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Errorf("DetectParameterChange(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestHasTravelContent(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Krkonoše", true},
		{"polopenze", true},
		{"chtěl bych dovolenou", true},
		{"je mi to jedno", true},
		{"kolik to stojí", true},
		{"jak se vaří guláš", false},
	}

	for _, tt := range tests {
		if got := HasTravelContent(tt.text); got != tt.want {
			t.Errorf("HasTravelContent(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
