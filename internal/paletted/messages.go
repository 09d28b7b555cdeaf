package paletted

import (
	"google.golang.org/protobuf/types/known/structpb"
)

// PaletteEntry is one palette in a ListPalettes response.
type PaletteEntry struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Hex     string `json:"hex"`
	Current bool   `json:"current"`
}

// AssignRequest is an AssignPalette request. A nil Palette omits the
// palette field, which the save path treats as "nothing submitted".
type AssignRequest struct {
	ItemID   string
	Palette  *string
	Autosave bool
}

func (r AssignRequest) fields() map[string]any {
	fields := map[string]any{
		"item_id":  r.ItemID,
		"autosave": r.Autosave,
	}
	if r.Palette != nil {
		fields["palette"] = *r.Palette
	}
	return fields
}

// AssignResult mirrors editor.SaveResult on the wire.
type AssignResult struct {
	Outcome  string `json:"outcome"`
	Reason   string `json:"reason,omitempty"`
	ItemID   string `json:"item_id"`
	Palette  string `json:"palette,omitempty"`
	Previous string `json:"previous,omitempty"`
}

// ResolveRequest is a ResolveClasses request. Type and Status are looked
// up from the item table when empty.
type ResolveRequest struct {
	ItemID   string
	Singular bool
	Type     string
	Status   string
	Classes  []string
}

func (r ResolveRequest) fields() map[string]any {
	fields := map[string]any{
		"item_id":  r.ItemID,
		"singular": r.Singular,
		"classes":  anyList(r.Classes),
	}
	if r.Type != "" {
		fields["type"] = r.Type
	}
	if r.Status != "" {
		fields["status"] = r.Status
	}
	return fields
}

func decodePalettes(s *structpb.Struct) []PaletteEntry {
	values := s.GetFields()["palettes"].GetListValue().GetValues()
	entries := make([]PaletteEntry, 0, len(values))
	for _, v := range values {
		entry := v.GetStructValue()
		entries = append(entries, PaletteEntry{
			Key:     stringField(entry, "key"),
			Name:    stringField(entry, "name"),
			Hex:     stringField(entry, "hex"),
			Current: boolField(entry, "current"),
		})
	}
	return entries
}

func decodeAssignResult(s *structpb.Struct) *AssignResult {
	return &AssignResult{
		Outcome:  stringField(s, "outcome"),
		Reason:   stringField(s, "reason"),
		ItemID:   stringField(s, "item_id"),
		Palette:  stringField(s, "palette"),
		Previous: stringField(s, "previous"),
	}
}

func stringField(s *structpb.Struct, name string) string {
	return s.GetFields()[name].GetStringValue()
}

func boolField(s *structpb.Struct, name string) bool {
	return s.GetFields()[name].GetBoolValue()
}

func hasField(s *structpb.Struct, name string) bool {
	_, ok := s.GetFields()[name]
	return ok
}

func stringList(s *structpb.Struct, name string) []string {
	values := s.GetFields()[name].GetListValue().GetValues()
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.GetStringValue())
	}
	return out
}

// anyList converts for structpb.NewStruct, which does not accept []string.
func anyList(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
