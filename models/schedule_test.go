package models

import "testing"

func TestNewSlots(t *testing.T) {
	slots := NewSlots()
	if len(slots) != len(DefaultSlotTimes) {
		t.Fatalf("expected %d slots, got %d", len(DefaultSlotTimes), len(slots))
	}
	for i, s := range slots {
		if s.Time != DefaultSlotTimes[i] {
			t.Errorf("slot %d: time %q, want %q", i, s.Time, DefaultSlotTimes[i])
		}
		if s.Status != SlotAvailable {
			t.Errorf("slot %d: status %q, want %q", i, s.Status, SlotAvailable)
		}
	}
}

// The slot list is matched by literal label, malformed entries included.
func TestDefaultSlotTimesLiterals(t *testing.T) {
	schedule := Schedule{Slots: NewSlots()}

	if schedule.FindSlot("11:00 am-12:00am") == nil {
		t.Error(`expected literal slot "11:00 am-12:00am"`)
	}
	if schedule.FindSlot("12:00 am -1:00 am") == nil {
		t.Error(`expected literal slot "12:00 am -1:00 am"`)
	}
	if schedule.FindSlot("11:00 am-12:00 am") != nil {
		t.Error("normalized label should not match the seeded list")
	}
}

func TestFindRequest(t *testing.T) {
	schedule := Schedule{
		Requests: []Request{
			{ID: "r1", Status: RequestPending},
			{ID: "r2", Status: RequestCancelled},
		},
	}

	if req := schedule.FindRequest("r2"); req == nil || req.Status != RequestCancelled {
		t.Fatalf("FindRequest(r2) = %+v", req)
	}
	if req := schedule.FindRequest("missing"); req != nil {
		t.Fatalf("FindRequest(missing) = %+v, want nil", req)
	}
}
