package store_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/store"
)

func seedFields() []model.Field {
	return []model.Field{
		{ID: "input-1684761600000", Type: model.FieldTypeText, Label: "Name", Required: true},
		{ID: "input-1684761600001", Type: model.FieldTypeEmail, Label: "Email", Required: true},
		{ID: "input-1684761600002", Type: model.FieldTypeTextarea, Label: "Message"},
	}
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func ids(fields []model.Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.ID
	}
	return out
}

func TestAddField_Defaults(t *testing.T) {
	s := store.New(store.WithIDGenerator(store.TimestampIDs(fixedClock(1700000000000))))

	field, err := s.AddField(model.FieldTypeText)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	want := model.Field{ID: "input-1700000000000", Type: model.FieldTypeText, Label: "New text input"}
	if diff := cmp.Diff(want, field); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
	if got := s.Fields(); len(got) != 1 || got[0].ID != field.ID {
		t.Fatalf("expected field appended, got %+v", got)
	}
}

func TestAddField_ChoiceTypesGetTwoOptions(t *testing.T) {
	for _, ft := range []model.FieldType{model.FieldTypeRadio, model.FieldTypeCheckbox, model.FieldTypeSelect, model.FieldTypeCombobox} {
		t.Run(string(ft), func(t *testing.T) {
			s := store.New()
			field, err := s.AddField(ft)
			if err != nil {
				t.Fatalf("add: %v", err)
			}
			want := []model.Option{
				{Label: "Option 1", Value: "option1"},
				{Label: "Option 2", Value: "option2"},
			}
			if diff := cmp.Diff(want, field.Options); diff != "" {
				t.Fatalf("options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddField_NonChoiceTypesHaveNoOptions(t *testing.T) {
	s := store.New()
	field, err := s.AddField(model.FieldTypeSlider)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if field.Options != nil {
		t.Fatalf("expected no options, got %+v", field.Options)
	}
}

func TestAddField_UnknownType(t *testing.T) {
	s := store.New()
	if _, err := s.AddField(model.FieldType("signature")); !errors.Is(err, store.ErrUnknownFieldType) {
		t.Fatalf("expected ErrUnknownFieldType, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected no mutation, got %d fields", s.Len())
	}
}

func TestAddField_IDsUniqueWhenClockStalls(t *testing.T) {
	s := store.New(store.WithIDGenerator(store.TimestampIDs(fixedClock(1684761600000))), store.WithSeed(seedFields()))

	seen := map[string]bool{}
	for _, f := range s.Fields() {
		seen[f.ID] = true
	}
	for i := 0; i < 20; i++ {
		field, err := s.AddField(model.FieldTypeText)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if seen[field.ID] {
			t.Fatalf("duplicate id %s", field.ID)
		}
		seen[field.ID] = true
	}
}

func TestAddField_RedrawsOnCollision(t *testing.T) {
	calls := 0
	gen := store.IDGeneratorFunc(func() string {
		calls++
		if calls == 1 {
			return "input-1684761600000"
		}
		return "input-fresh"
	})
	s := store.New(store.WithSeed(seedFields()), store.WithIDGenerator(gen))

	field, err := s.AddField(model.FieldTypeEmail)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if field.ID != "input-fresh" {
		t.Fatalf("expected redraw, got %s", field.ID)
	}
}

func TestUUIDIDs(t *testing.T) {
	s := store.New(store.WithIDGenerator(store.UUIDIDs()))
	a, _ := s.AddField(model.FieldTypeText)
	b, _ := s.AddField(model.FieldTypeText)
	if a.ID == b.ID {
		t.Fatalf("expected unique ids, got %s twice", a.ID)
	}
	if len(a.ID) != len(store.IDPrefix)+36 {
		t.Fatalf("unexpected uuid id %q", a.ID)
	}
}

func TestRemoveField_Idempotent(t *testing.T) {
	s := store.New(store.WithSeed(seedFields()))

	if !s.RemoveField("input-1684761600001") {
		t.Fatalf("expected first remove to report true")
	}
	if s.RemoveField("input-1684761600001") {
		t.Fatalf("expected second remove to be a no-op")
	}
	want := []string{"input-1684761600000", "input-1684761600002"}
	if diff := cmp.Diff(want, ids(s.Fields())); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveField_ClearsEditing(t *testing.T) {
	s := store.New(store.WithSeed(seedFields()))
	if !s.SetEditingField("input-1684761600002") {
		t.Fatalf("set editing failed")
	}

	s.RemoveField("input-1684761600000")
	if f, ok := s.EditingField(); !ok || f.ID != "input-1684761600002" {
		t.Fatalf("removing another field must keep editing reference, got %+v %v", f, ok)
	}

	s.RemoveField("input-1684761600002")
	if _, ok := s.EditingField(); ok {
		t.Fatalf("expected editing reference cleared")
	}
	if s.Snapshot().EditingID != "" {
		t.Fatalf("expected empty editing id in snapshot")
	}
}

func TestUpdateField_MergesAndKeepsIdentity(t *testing.T) {
	s := store.New(store.WithSeed(seedFields()))
	s.SetEditingField("input-1684761600000")

	patch := model.Patch{
		Label:     ptr("Full name"),
		MinLength: model.Replace(2),
		MaxLength: model.Replace(40),
	}
	updated, ok := s.UpdateField("input-1684761600000", patch)
	if !ok {
		t.Fatalf("expected update to apply")
	}

	want := model.Field{
		ID:        "input-1684761600000",
		Type:      model.FieldTypeText,
		Label:     "Full name",
		Required:  true,
		MinLength: model.Int(2),
		MaxLength: model.Int(40),
	}
	if diff := cmp.Diff(want, updated); diff != "" {
		t.Fatalf("updated mismatch (-want +got):\n%s", diff)
	}

	editing, ok := s.EditingField()
	if !ok {
		t.Fatalf("expected editing field")
	}
	if diff := cmp.Diff(want, editing); diff != "" {
		t.Fatalf("editing field must reflect the merge (-want +got):\n%s", diff)
	}
}

func TestUpdateField_ClearConstraint(t *testing.T) {
	seed := seedFields()
	seed[0].MinLength = model.Int(3)
	s := store.New(store.WithSeed(seed))

	updated, ok := s.UpdateField(seed[0].ID, model.Patch{MinLength: model.Clear[int]()})
	if !ok {
		t.Fatalf("expected update")
	}
	if updated.MinLength != nil {
		t.Fatalf("expected minLength cleared, got %v", *updated.MinLength)
	}
}

func TestUpdateField_MissingIDIsNoop(t *testing.T) {
	s := store.New(store.WithSeed(seedFields()))
	before := s.Snapshot()

	if _, ok := s.UpdateField("input-missing", model.SetRequired(true)); ok {
		t.Fatalf("expected no-op")
	}
	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Fatalf("snapshot changed (-before +after):\n%s", diff)
	}
}

func TestFields_ReturnsCopies(t *testing.T) {
	seed := seedFields()
	seed[0].Options = []model.Option{{Label: "A", Value: "a"}}
	s := store.New(store.WithSeed(seed))

	fields := s.Fields()
	fields[0].Label = "mutated"
	fields[0].Options[0].Value = "mutated"

	again, _ := s.Field(seed[0].ID)
	if again.Label != "Name" || again.Options[0].Value != "a" {
		t.Fatalf("store state leaked through copy: %+v", again)
	}
}

func TestReorder(t *testing.T) {
	cases := []struct {
		name     string
		from, to int
		want     []string
		moved    bool
	}{
		{"forward", 0, 2, []string{"input-1684761600001", "input-1684761600002", "input-1684761600000"}, true},
		{"backward", 2, 0, []string{"input-1684761600002", "input-1684761600000", "input-1684761600001"}, true},
		{"same index", 1, 1, []string{"input-1684761600000", "input-1684761600001", "input-1684761600002"}, false},
		{"negative", -1, 1, []string{"input-1684761600000", "input-1684761600001", "input-1684761600002"}, false},
		{"past end", 0, 3, []string{"input-1684761600000", "input-1684761600001", "input-1684761600002"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := store.New(store.WithSeed(seedFields()))
			if moved := s.Reorder(tc.from, tc.to); moved != tc.moved {
				t.Fatalf("moved: want %v, got %v", tc.moved, moved)
			}
			if diff := cmp.Diff(tc.want, ids(s.Fields())); diff != "" {
				t.Fatalf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMove(t *testing.T) {
	s := store.New(store.WithSeed(seedFields()))

	if s.Move("input-1684761600000", "input-1684761600000") {
		t.Fatalf("same id must be a no-op")
	}
	if s.Move("input-1684761600000", "") {
		t.Fatalf("missing over id must be a no-op")
	}
	if s.Move("input-1684761600000", "input-unknown") {
		t.Fatalf("unknown over id must be a no-op")
	}
	if !s.Move("input-1684761600002", "input-1684761600000") {
		t.Fatalf("expected move")
	}

	want := []string{"input-1684761600002", "input-1684761600000", "input-1684761600001"}
	if diff := cmp.Diff(want, ids(s.Fields())); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSetEditingField_RejectsUnknownID(t *testing.T) {
	s := store.New(store.WithSeed(seedFields()))
	s.SetEditingField("input-1684761600001")

	if s.SetEditingField("input-unknown") {
		t.Fatalf("expected unknown id to be rejected")
	}
	if f, ok := s.EditingField(); !ok || f.ID != "input-1684761600001" {
		t.Fatalf("editing reference must be unchanged, got %+v", f)
	}

	s.ClearEditingField()
	if _, ok := s.EditingField(); ok {
		t.Fatalf("expected cleared editing reference")
	}
}

func TestSetLayout(t *testing.T) {
	s := store.New()
	if s.Layout() != model.LayoutResponsive {
		t.Fatalf("unexpected default layout %q", s.Layout())
	}
	if err := s.SetLayout(model.LayoutFourColumns); err != nil {
		t.Fatalf("set layout: %v", err)
	}
	if err := s.SetLayout(model.Layout("7")); !errors.Is(err, store.ErrUnknownLayout) {
		t.Fatalf("expected ErrUnknownLayout, got %v", err)
	}
	if s.Layout() != model.LayoutFourColumns {
		t.Fatalf("layout changed by rejected call: %q", s.Layout())
	}
}

func TestNewFromForm(t *testing.T) {
	s, err := store.NewFromForm(model.Form{Fields: seedFields(), Layout: model.LayoutTwoColumns})
	if err != nil {
		t.Fatalf("new from form: %v", err)
	}
	if s.Layout() != model.LayoutTwoColumns || s.Len() != 3 {
		t.Fatalf("unexpected store state: %+v", s.Snapshot())
	}

	dup := append(seedFields(), seedFields()[0])
	if _, err := store.NewFromForm(model.Form{Fields: dup}); !errors.Is(err, model.ErrFieldIDDuplicate) {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestSubscribe(t *testing.T) {
	s := store.New(store.WithSeed(seedFields()))

	var got []model.Form
	cancel := s.Subscribe(func(f model.Form) { got = append(got, f) })

	s.RemoveField("input-missing")
	s.Reorder(0, 0)
	s.RemoveField("input-1684761600000")
	s.SetLayout(model.LayoutOneColumn)

	if len(got) != 2 {
		t.Fatalf("expected 2 notifications for effective mutations, got %d", len(got))
	}
	if len(got[0].Fields) != 2 || got[1].Layout != model.LayoutOneColumn {
		t.Fatalf("unexpected snapshots: %+v", got)
	}

	cancel()
	s.RemoveField("input-1684761600001")
	if len(got) != 2 {
		t.Fatalf("expected no notification after cancel, got %d", len(got))
	}
}

func ptr[T any](v T) *T { return &v }
