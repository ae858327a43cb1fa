package model

import "testing"

// 集合名是对外契约, 现有读取方按这些名字查库, 改名会直接查空.
func TestCollectionNames(t *testing.T) {
	want := map[string]string{
		PROJECT:      "projects",
		TASK:         "tasks",
		MILESTONE:    "milestones",
		USER:         "users",
		CLIENT:       "clients",
		INVITEUSER:   "invite_users",
		AVAILABILITY: "useravailabilitycalender",
	}
	for got, name := range want {
		if got != name {
			t.Errorf("集合名期望%s, 实际%s", name, got)
		}
	}
}

func TestCollectionsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, name := range Collections {
		if seen[name] {
			t.Errorf("集合名重复: %s", name)
		}
		seen[name] = true
	}
	if len(Collections) != 20 {
		t.Errorf("集合数量期望20, 实际%d", len(Collections))
	}
}
