package model

// Selection is the mutable state of one configurator session: the chosen
// chassis (empty string means none) and the set of selected option ids.
type Selection struct {
	ChassisID string
	OptionIDs map[string]struct{}
}

func NewSelection() Selection {
	return Selection{OptionIDs: make(map[string]struct{})}
}

func (s Selection) Has(optionID string) bool {
	_, ok := s.OptionIDs[optionID]
	return ok
}

func (s Selection) Add(optionID string) {
	s.OptionIDs[optionID] = struct{}{}
}

func (s Selection) Remove(optionID string) {
	delete(s.OptionIDs, optionID)
}

// SelectedIDs returns the selected option ids as a slice. Order is not
// significant.
func (s Selection) SelectedIDs() []string {
	out := make([]string, 0, len(s.OptionIDs))
	for id := range s.OptionIDs {
		out = append(out, id)
	}
	return out
}

func (s Selection) Clone() Selection {
	out := Selection{
		ChassisID: s.ChassisID,
		OptionIDs: make(map[string]struct{}, len(s.OptionIDs)),
	}
	for id := range s.OptionIDs {
		out.OptionIDs[id] = struct{}{}
	}
	return out
}
