package usecase

import (
	"testing"

	"invoicepro/internal/domain/entities"
)

func TestLeadFilter_Matches(t *testing.T) {
	lead := entities.Lead{
		ID:               "l1",
		Name:             "Alice Johnson",
		EmailAddress:     "alice@example.com",
		MobileNumber:     "+61 400 111 222",
		Notes:            "Prefers email contact",
		LeadDate:         "2024-02-10",
		LeadStatus:       "Created",
		Services:         []string{"SEO", "PPC"},
		LastFollowUpDate: "2024-03-01",
	}

	t.Run("unset filter matches everything", func(t *testing.T) {
		if !(LeadFilter{}).Matches(lead) {
			t.Fatalf("zero filter must match")
		}
	})

	t.Run("search is case-insensitive partial match", func(t *testing.T) {
		cases := []struct {
			query string
			want  bool
		}{
			{"alice", true},
			{"JOHNSON", true},
			{"example.COM", true},
			{"prefers EMAIL", true},
			{"400 111", true},
			{"carol", false},
		}
		for _, tc := range cases {
			if got := (LeadFilter{Search: tc.query}).Matches(lead); got != tc.want {
				t.Fatalf("search %q: expected %v got %v", tc.query, tc.want, got)
			}
		}
	})

	t.Run("search tolerates absent notes", func(t *testing.T) {
		bare := entities.Lead{Name: "Bob"}
		if !(LeadFilter{Search: "bob"}).Matches(bare) {
			t.Fatalf("expected match on name")
		}
		if (LeadFilter{Search: "anything"}).Matches(bare) {
			t.Fatalf("expected no match")
		}
	})

	t.Run("exact criteria", func(t *testing.T) {
		if !(LeadFilter{LeadDate: "2024-02-10"}).Matches(lead) {
			t.Fatalf("expected lead date match")
		}
		if (LeadFilter{LeadDate: "2024-02-11"}).Matches(lead) {
			t.Fatalf("lead date is exact equality")
		}
		if !(LeadFilter{Status: "Created"}).Matches(lead) {
			t.Fatalf("expected status match")
		}
		if (LeadFilter{Status: "created"}).Matches(lead) {
			t.Fatalf("status is exact equality")
		}
		if !(LeadFilter{FollowUpDate: "2024-03-01"}).Matches(lead) {
			t.Fatalf("expected follow-up date match")
		}
	})

	t.Run("service is membership", func(t *testing.T) {
		if !(LeadFilter{Service: "SEO"}).Matches(lead) {
			t.Fatalf("expected membership match")
		}
		if (LeadFilter{Service: "Other"}).Matches(lead) {
			t.Fatalf("expected no membership")
		}
		none := entities.Lead{Name: "Bob", Services: []string{}}
		if (LeadFilter{Service: "SEO"}).Matches(none) {
			t.Fatalf("empty service list matches nothing")
		}
	})

	t.Run("criteria intersect", func(t *testing.T) {
		both := LeadFilter{Search: "alice", Status: "Created"}
		if !both.Matches(lead) {
			t.Fatalf("expected match when all criteria hold")
		}
		miss := LeadFilter{Search: "alice", Status: "Client"}
		if miss.Matches(lead) {
			t.Fatalf("one failing criterion must exclude the lead")
		}
	})
}

func TestLeadFilter_Apply(t *testing.T) {
	leads := []entities.Lead{
		{ID: "l1", Name: "Alice", Services: []string{"SEO"}},
		{ID: "l2", Name: "Bob", Services: []string{"PPC", "SEO"}},
		{ID: "l3", Name: "Carol", Services: []string{}},
	}

	t.Run("keeps original order", func(t *testing.T) {
		got := (LeadFilter{Service: "SEO"}).Apply(leads)
		if len(got) != 2 || got[0].ID != "l1" || got[1].ID != "l2" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("clearing the filter restores the full set", func(t *testing.T) {
		narrowed := (LeadFilter{Service: "PPC"}).Apply(leads)
		if len(narrowed) != 1 {
			t.Fatalf("unexpected narrowed result: %+v", narrowed)
		}
		restored := (LeadFilter{}).Apply(leads)
		if len(restored) != len(leads) {
			t.Fatalf("expected full set, got %+v", restored)
		}
	})

	t.Run("no matches yields empty non-nil slice", func(t *testing.T) {
		got := (LeadFilter{Search: "zzz"}).Apply(leads)
		if got == nil || len(got) != 0 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
