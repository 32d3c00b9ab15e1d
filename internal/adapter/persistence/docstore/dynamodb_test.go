package docstore

import (
	"testing"
	"time"
)

func TestSortDocuments(t *testing.T) {
	t.Run("no criteria leaves order unchanged", func(t *testing.T) {
		docs := []Document{
			{ID: "b", Fields: map[string]interface{}{"order": 2.0}},
			{ID: "a", Fields: map[string]interface{}{"order": 1.0}},
		}
		SortDocuments(docs)
		if docs[0].ID != "b" || docs[1].ID != "a" {
			t.Fatalf("unexpected order: %+v", docs)
		}
	})

	t.Run("sorts by numeric field", func(t *testing.T) {
		docs := []Document{
			{ID: "c", Fields: map[string]interface{}{"order": 3.0}},
			{ID: "a", Fields: map[string]interface{}{"order": 1.0}},
			{ID: "b", Fields: map[string]interface{}{"order": 2.0}},
		}
		SortDocuments(docs, Order{Field: "order"})
		for i, want := range []string{"a", "b", "c"} {
			if docs[i].ID != want {
				t.Fatalf("position %d: expected %s got %s", i, want, docs[i].ID)
			}
		}
	})

	t.Run("timestamp strings sort chronologically", func(t *testing.T) {
		early := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC).Format(time.RFC3339Nano)
		late := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC).Format(time.RFC3339Nano)
		docs := []Document{
			{ID: "old", Fields: map[string]interface{}{"createdAt": early}},
			{ID: "new", Fields: map[string]interface{}{"createdAt": late}},
		}
		SortDocuments(docs, Order{Field: "createdAt", Desc: true})
		if docs[0].ID != "new" || docs[1].ID != "old" {
			t.Fatalf("unexpected order: %+v", docs)
		}
	})

	t.Run("second criterion breaks ties", func(t *testing.T) {
		docs := []Document{
			{ID: "b", Fields: map[string]interface{}{"order": 1.0, "createdAt": "2024-02-01T00:00:00Z"}},
			{ID: "a", Fields: map[string]interface{}{"order": 1.0, "createdAt": "2024-01-01T00:00:00Z"}},
		}
		SortDocuments(docs, Order{Field: "order"}, Order{Field: "createdAt"})
		if docs[0].ID != "a" || docs[1].ID != "b" {
			t.Fatalf("unexpected order: %+v", docs)
		}
	})

	t.Run("missing field sorts first", func(t *testing.T) {
		docs := []Document{
			{ID: "has", Fields: map[string]interface{}{"order": 1.0}},
			{ID: "missing", Fields: map[string]interface{}{}},
		}
		SortDocuments(docs, Order{Field: "order"})
		if docs[0].ID != "missing" {
			t.Fatalf("unexpected order: %+v", docs)
		}
	})
}

func TestCompareFieldValues(t *testing.T) {
	cases := []struct {
		name string
		a, b interface{}
		want int
	}{
		{"both nil", nil, nil, 0},
		{"nil first", nil, "x", -1},
		{"nil second", "x", nil, 1},
		{"strings", "a", "b", -1},
		{"equal strings", "a", "a", 0},
		{"floats", 1.0, 2.0, -1},
		{"float and int", 3.0, 2, 1},
		{"bools", false, true, -1},
		{"mismatched types", "a", 1.0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := compareFieldValues(tc.a, tc.b); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestUserCollection(t *testing.T) {
	if got := UserCollection("user-1", KindLeads); got != "users/user-1/leads" {
		t.Fatalf("unexpected path: %s", got)
	}
	if got := UserCollection("user-1", KindStatusOptions); got != "users/user-1/status_options" {
		t.Fatalf("unexpected path: %s", got)
	}
}
