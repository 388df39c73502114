package engine

import (
	"regexp"
	"strings"

	"github.com/kolecko-ai/travel-assistant/internal/model"
)

// Sentinel slot values.
const (
	// NoPreference marks a slot the user explicitly left unconstrained.
	NoPreference = "bez preference"
	// Anytime marks the dates slot as explicitly flexible.
	Anytime = "kdykoliv"
)

// Slot names.
const (
	SlotLocation  = "location"
	SlotPeople    = "people"
	SlotDates     = "dates"
	SlotMeals     = "meals"
	SlotAmenities = "amenities"
)

// TripState is the cumulative slot-filling snapshot of a conversation.
// Every non-empty field holds a canonical label produced by the
// extractors; only Dates may carry verbatim user text, when the assistant
// had explicitly asked about dates and nothing else parsed.
type TripState struct {
	Location  string `json:"location,omitempty"`
	People    string `json:"people,omitempty"`
	Dates     string `json:"dates,omitempty"`
	Meals     string `json:"meals,omitempty"`
	Amenities string `json:"amenities,omitempty"`
}

// Missing lists the unfilled slots other than location, in the fixed order
// the assistant asks about them. Location is a hard gate handled
// separately.
func (s TripState) Missing() []string {
	var missing []string
	if s.People == "" {
		missing = append(missing, SlotPeople)
	}
	if s.Dates == "" {
		missing = append(missing, SlotDates)
	}
	if s.Meals == "" {
		missing = append(missing, SlotMeals)
	}
	if s.Amenities == "" {
		missing = append(missing, SlotAmenities)
	}
	return missing
}

// set assigns a slot by name.
func (s *TripState) set(slot, value string) {
	switch slot {
	case SlotLocation:
		s.Location = value
	case SlotPeople:
		s.People = value
	case SlotDates:
		s.Dates = value
	case SlotMeals:
		s.Meals = value
	case SlotAmenities:
		s.Amenities = value
	}
}

// ExtractFullState replays every user message in order and returns the
// resulting slot state. Later messages overwrite earlier values per slot,
// which is what lets the user correct themselves mid-conversation. The
// state is recomputed from scratch on every call; with conversations tens
// of messages long the O(n) replay is cheaper than keeping an
// incrementally mutated copy consistent.
func ExtractFullState(messages []model.Message) TripState {
	var state TripState

	for _, m := range messages {
		if m.Sender != model.SenderUser {
			continue
		}

		// Segment-wise pass first, so one sentence can fill several slots.
		var segmentAmenities []string
		for _, seg := range SplitSegments(m.Text) {
			if loc := ExtractLocation(seg); loc != "" {
				state.Location = loc
			}
			if ppl := ExtractPeople(seg); ppl != "" {
				state.People = ppl
			}
			if dt := ExtractDates(seg); dt != "" {
				state.Dates = dt
			}
			if ml := ExtractMeals(seg); ml != "" {
				state.Meals = ml
			}
			am := ExtractAmenities(seg)
			if am != "" && am != NoPreference {
				segmentAmenities = append(segmentAmenities, am)
			}
			if am == NoPreference && len(segmentAmenities) == 0 {
				segmentAmenities = append(segmentAmenities, am)
			}
		}

		// Whole-message pass catches multi-word phrases the segmentation
		// broke apart.
		if loc := ExtractLocation(m.Text); loc != "" {
			state.Location = loc
		}
		if ppl := ExtractPeople(m.Text); ppl != "" {
			state.People = ppl
		}
		if dt := ExtractDates(m.Text); dt != "" {
			state.Dates = dt
		}
		if ml := ExtractMeals(m.Text); ml != "" {
			state.Meals = ml
		}
		fullAm := ExtractAmenities(m.Text)
		if fullAm != "" && state.Amenities == "" {
			if len(segmentAmenities) > 0 {
				state.Amenities = mergeAmenities(segmentAmenities)
			} else {
				state.Amenities = fullAm
			}
		}
		if len(segmentAmenities) > 0 && state.Amenities == "" {
			state.Amenities = mergeAmenities(segmentAmenities)
		}
	}

	return state
}

// mergeAmenities flattens comma-joined amenity lists and deduplicates
// while preserving first-seen order.
func mergeAmenities(lists []string) string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, a := range strings.Split(list, ", ") {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}
	}
	return strings.Join(out, ", ")
}

// BotAskedFields infers which slots the most recent bot message was asking
// about, by looking for per-slot phrase fragments in its normalized text.
func BotAskedFields(messages []model.Message) map[string]bool {
	fields := make(map[string]bool)

	var lastBot string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Sender == model.SenderBot {
			lastBot = Normalize(messages[i].Text)
			break
		}
	}
	if lastBot == "" {
		return fields
	}

	if strings.Contains(lastBot, "lokalit") || strings.Contains(lastBot, "kam") || strings.Contains(lastBot, "oblast") {
		fields[SlotLocation] = true
	}
	if strings.Contains(lastBot, "kolik") || strings.Contains(lastBot, "pojed") || strings.Contains(lastBot, "osob") || strings.Contains(lastBot, "vas") {
		fields[SlotPeople] = true
	}
	if strings.Contains(lastBot, "termin") || strings.Contains(lastBot, "kdy") || strings.Contains(lastBot, "datum") || strings.Contains(lastBot, "obdobi") {
		fields[SlotDates] = true
	}
	if strings.Contains(lastBot, "strav") || strings.Contains(lastBot, "penz") || strings.Contains(lastBot, "snidan") {
		fields[SlotMeals] = true
	}
	if strings.Contains(lastBot, "vybaven") || strings.Contains(lastBot, "bazen") || strings.Contains(lastBot, "koutek") || strings.Contains(lastBot, "wellness") || strings.Contains(lastBot, "hotel") {
		fields[SlotAmenities] = true
	}

	return fields
}

// DealsWereShown reports whether any bot turn so far carried deals.
func DealsWereShown(messages []model.Message) bool {
	for _, m := range messages {
		if m.Sender == model.SenderBot && len(m.Deals) > 0 {
			return true
		}
	}
	return false
}

// ActivitiesWereShown reports whether any bot turn so far carried
// activities.
func ActivitiesWereShown(messages []model.Message) bool {
	for _, m := range messages {
		if m.Sender == model.SenderBot && len(m.Activities) > 0 {
			return true
		}
	}
	return false
}

// HasTravelIntent reports whether the text talks about travelling at all.
func HasTravelIntent(text string) bool {
	return FuzzyMatch(text, travelIntentKeywords)
}

// IsActivityRequest reports whether the user is asking for trips or
// activities in the area.
func IsActivityRequest(text string) bool {
	return FuzzyMatch(text, activityRequestKeywords)
}

// IsStayRequest reports whether the user is asking for accommodation
// offers.
func IsStayRequest(text string) bool {
	return FuzzyMatch(text, stayRequestKeywords)
}

// HasTravelContent reports whether the message contains anything the
// assistant can work with: an extractable slot, travel intent, an
// activity or stay request, a don't-care answer, or talk about the offers
// themselves. Messages with none of these are off-topic candidates.
func HasTravelContent(text string) bool {
	if ExtractLocation(text) != "" {
		return true
	}
	if ExtractPeople(text) != "" {
		return true
	}
	if ExtractDates(text) != "" {
		return true
	}
	if ExtractMeals(text) != "" {
		return true
	}
	if ExtractAmenities(text) != "" {
		return true
	}
	if HasTravelIntent(text) {
		return true
	}
	if IsActivityRequest(text) {
		return true
	}
	if IsStayRequest(text) {
		return true
	}
	if IsDontCare(text) {
		return true
	}
	return FuzzyMatch(text, dealTalkKeywords)
}

// ParameterChange is a detected mid-conversation correction of one slot.
type ParameterChange struct {
	Slot  string
	Value string
}

var (
	changeSignalRe   = regexp.MustCompile(`\b(vlastne|radsi|radeji|zmen|zmenil|zmenim|zmena|jiny|jine|jinou|prece jen|nakonec|ne |ne,)`)
	changeExplicitRe = regexp.MustCompile(`\b(chci zmenit|zmenit na|prepis|uprav)`)
)

// DetectParameterChange looks for an explicit change signal ("vlastně",
// "radši", "změň", ...) together with an extractable slot value. Returns
// nil when the message is not a correction.
func DetectParameterChange(text string) *ParameterChange {
	n := Normalize(text)

	if !changeSignalRe.MatchString(n) && !changeExplicitRe.MatchString(n) {
		return nil
	}

	if loc := ExtractLocation(text); loc != "" {
		return &ParameterChange{Slot: SlotLocation, Value: loc}
	}
	if ppl := ExtractPeople(text); ppl != "" {
		return &ParameterChange{Slot: SlotPeople, Value: ppl}
	}
	if dt := ExtractDates(text); dt != "" {
		return &ParameterChange{Slot: SlotDates, Value: dt}
	}
	if ml := ExtractMeals(text); ml != "" {
		return &ParameterChange{Slot: SlotMeals, Value: ml}
	}
	if am := ExtractAmenities(text); am != "" {
		return &ParameterChange{Slot: SlotAmenities, Value: am}
	}

	return nil
}
