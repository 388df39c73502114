package engine

import (
	"strings"
)

// slotFlow is the default path once no special intent claimed the turn:
// apply parameter changes and don't-care answers, fold the current message
// into the slot state, deflect off-topic input, then either ask for what
// is still missing or present results.
func (e *Engine) slotFlow(t *turn) Response {
	state := ExtractFullState(t.history)
	asked := BotAskedFields(t.history)

	// Explicit correction: overwrite the slot and either re-search or
	// re-ask for whatever is still open.
	if change := DetectParameterChange(t.text); change != nil {
		state.set(change.Slot, change.Value)
		if len(state.Missing()) == 0 {
			resp := e.dealsResponse(state, "Jasně, změněno! Hledám znovu s novými parametry.")
			resp.Path = "parameter_change"
			return resp
		}
		return Response{
			Text: "Jasně, změněno! " + e.missingQuestions(state.Missing()),
			Path: "parameter_change",
		}
	}

	// "Je mi to jedno" answers the slot(s) the assistant just asked
	// about; a short don't-care clears every remaining one at once.
	if IsDontCare(t.text) && len(asked) > 0 {
		if asked[SlotMeals] && state.Meals == "" {
			state.Meals = NoPreference
		}
		if asked[SlotAmenities] && state.Amenities == "" {
			state.Amenities = NoPreference
		}
		if asked[SlotDates] && state.Dates == "" {
			state.Dates = Anytime
		}
		if asked[SlotPeople] && state.People == "" {
			state.People = NoPreference
		}

		if remaining := state.Missing(); len(remaining) > 0 && runeLen(t.norm) < 25 {
			for _, slot := range remaining {
				switch slot {
				case SlotMeals:
					state.Meals = NoPreference
				case SlotAmenities:
					state.Amenities = NoPreference
				case SlotDates:
					state.Dates = Anytime
				case SlotPeople:
					state.People = NoPreference
				}
			}
		}
	}

	// Fold the current message in: segments first for multi-slot capture,
	// then the whole message for phrases the splitting broke.
	var currentAmenities []string
	for _, seg := range SplitSegments(t.text) {
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
			currentAmenities = append(currentAmenities, am)
		}
		if am == NoPreference {
			state.Amenities = NoPreference
		}
	}

	fullLoc := ExtractLocation(t.text)
	fullPpl := ExtractPeople(t.text)
	fullDt := ExtractDates(t.text)
	fullMl := ExtractMeals(t.text)
	fullAm := ExtractAmenities(t.text)

	if fullLoc != "" {
		state.Location = fullLoc
	}
	if fullPpl != "" {
		state.People = fullPpl
	}
	if fullDt != "" {
		state.Dates = fullDt
	}
	if fullMl != "" {
		state.Meals = fullMl
	}
	if fullAm != "" {
		if len(currentAmenities) > 0 {
			state.Amenities = mergeAmenities(currentAmenities)
		} else {
			state.Amenities = fullAm
		}
	}

	// Short contextual answers: when the assistant asked about a slot and
	// nothing else parsed, accept the raw text. Only dates keeps this in
	// the replayed state; meals/amenities get it for the current turn.
	if len(asked) > 0 && runeLen(t.norm) < 60 {
		if asked[SlotDates] && state.Dates == "" && fullLoc == "" && fullPpl == "" && fullMl == "" && fullAm == "" {
			if !IsDontCare(t.text) && runeLen(t.norm) > 2 {
				state.Dates = strings.TrimSpace(t.text)
			}
		}
		if asked[SlotMeals] && state.Meals == "" && fullLoc == "" && fullPpl == "" && fullDt == "" && fullAm == "" {
			if !IsDontCare(t.text) && runeLen(t.norm) > 2 {
				state.Meals = strings.TrimSpace(t.text)
			}
		}
		if asked[SlotAmenities] && state.Amenities == "" && fullLoc == "" && fullPpl == "" && fullDt == "" && fullMl == "" {
			if !IsDontCare(t.text) && runeLen(t.norm) > 2 {
				state.Amenities = strings.TrimSpace(t.text)
			}
		}
	}

	// Off-topic deflection. Strict once results were shown; before that,
	// only longer clearly unrelated messages, so short answers to pending
	// questions survive.
	hasTravelContent := HasTravelContent(t.text)
	shownDeals := DealsWereShown(t.history)

	if !hasTravelContent && runeLen(t.norm) > 3 && !standaloneDigitRe.MatchString(t.norm) && len(asked) == 0 {
		if shownDeals {
			return Response{Text: e.offTopic.Pick(), Path: "off_topic"}
		}
		if runeLen(t.norm) > 8 && !shortReplyRe.MatchString(t.norm) {
			return Response{Text: e.offTopic.Pick(), Path: "off_topic"}
		}
	}

	// Location is a hard gate: nothing else is asked before it is known.
	if state.Location == "" {
		if HasTravelIntent(t.text) {
			return Response{
				Text: "To zní skvěle! 🏔️ Kam by ses chtěl/a podívat? Třeba Krkonoše, Beskydy, Šumava…?",
				Path: "ask_location",
			}
		}
		return Response{
			Text: "Super, rád pomůžu! Řekni mi, kam to má být – jaká lokalita tě láká? 🗺️",
			Path: "ask_location",
		}
	}

	if missing := state.Missing(); len(missing) > 0 {
		return Response{
			Text: e.acknowledgement(state, t.text) + "\n\n" + e.missingQuestions(missing),
			Path: "ask_slots",
		}
	}

	// Everything is known. After results were already shown, only
	// genuinely new information triggers a re-search.
	if shownDeals {
		prevState := ExtractFullState(t.history[:len(t.history)-1])
		hasNewInfo := (fullLoc != "" && fullLoc != prevState.Location) ||
			(fullPpl != "" && fullPpl != prevState.People) ||
			(fullDt != "" && fullDt != prevState.Dates) ||
			(fullMl != "" && fullMl != prevState.Meals) ||
			(fullAm != "" && fullAm != prevState.Amenities)

		if hasNewInfo {
			resp := e.dealsResponse(state, "Rozumím, hledám s novými parametry!")
			resp.Path = "results"
			return resp
		}

		if hasTravelContent {
			return Response{
				Text: "Chceš, abych ti ukázal další nabídky? Nebo chceš změnit některý z parametrů? Klidně řekni, co potřebuješ. 😊",
				Path: "post_results",
			}
		}

		return Response{Text: e.offTopic.Pick(), Path: "off_topic"}
	}

	resp := e.dealsResponse(state, "")
	resp.Path = "results"
	return resp
}

// acknowledgement prefixes the next question with what the assistant just
// understood.
func (e *Engine) acknowledgement(state TripState, currentMessage string) string {
	var parts []string
	hasNewLocation := ExtractLocation(currentMessage) != ""

	if hasNewLocation {
		parts = append(parts, state.Location+" – skvělá volba! 🏔️")
	}

	var known []string
	if state.Location != "" && !hasNewLocation {
		known = append(known, "📍 "+state.Location)
	}
	if state.People != "" {
		known = append(known, "👥 "+state.People)
	}
	if state.Dates != "" {
		known = append(known, "📅 "+state.Dates)
	}
	if state.Meals != "" {
		known = append(known, "🍽️ "+state.Meals)
	}
	if state.Amenities != "" && state.Amenities != NoPreference {
		known = append(known, "🏨 "+state.Amenities)
	}

	if len(known) > 0 && !hasNewLocation {
		parts = append(parts, "Díky, rozumím!")
	}

	if len(parts) == 0 {
		return "Díky za info!"
	}
	return strings.Join(parts, " ")
}

// missingQuestions builds one tailored question for a single missing slot,
// or a consolidated list inviting the user to answer everything at once.
func (e *Engine) missingQuestions(missing []string) string {
	if len(missing) == 1 {
		switch missing[0] {
		case SlotPeople:
			return "Ještě mi řekni, kolik vás pojede? 👥"
		case SlotDates:
			return "A kdy chceš jet? 📅"
		case SlotMeals:
			return "Jaké stravování by ti vyhovovalo? (polopenze, plná penze, snídaně, vlastní…) 🍽️"
		case SlotAmenities:
			return "Je pro tebe důležité nějaké vybavení hotelu? Třeba bazén, wellness, dětský koutek… nebo je ti to jedno? 🏨"
		}
	}

	parts := []string{"Ještě potřebuji vědět:"}

	var questions []string
	for _, slot := range missing {
		switch slot {
		case SlotPeople:
			questions = append(questions, "👥 Kolik vás pojede?")
		case SlotDates:
			questions = append(questions, "📅 Kdy chceš jet?")
		case SlotMeals:
			questions = append(questions, "🍽️ Jaké stravování? (vlastní, snídaně, polopenze, plná penze, all inclusive)")
		case SlotAmenities:
			questions = append(questions, "🏨 Vybavení hotelu? (bazén, wellness, dětský koutek, pet friendly… nebo je ti to jedno)")
		}
	}
	parts = append(parts, strings.Join(questions, "\n"))

	if len(missing) > 1 {
		parts = append(parts, "\nKlidně napiš vše najednou v jedné zprávě!")
	}

	return strings.Join(parts, "\n\n")
}

// dealsResponse builds the final recap plus a fresh random selection of
// deals. Sentinel values are left out of the recap.
func (e *Engine) dealsResponse(state TripState, prefix string) Response {
	summary := []string{"📍 " + state.Location}
	if state.People != "" && state.People != NoPreference {
		summary = append(summary, "👥 "+state.People)
	}
	if state.Dates != "" && state.Dates != Anytime {
		summary = append(summary, "📅 "+state.Dates)
	}
	if state.Meals != "" && state.Meals != NoPreference {
		summary = append(summary, "🍽️ "+state.Meals)
	}
	if state.Amenities != "" && state.Amenities != NoPreference {
		summary = append(summary, "🏨 "+state.Amenities)
	}

	intro := prefix
	if intro == "" {
		intro = "Paráda, mám vše!"
	}

	return Response{
		Text:  intro + "\n\n" + strings.Join(summary, "\n") + "\n\nNašel jsem podle toho, co ti nejvíc sedne.",
		Deals: e.deals.PickRandom(e.dealsPerReply),
	}
}
