package catalog

import (
	"reflect"
	"testing"
)

func TestLookups(t *testing.T) {
	s := Default()

	svc, ok := s.ServiceByID("3")
	if !ok || svc.Name != "Keratin Smoothing" || svc.Price != 450.00 {
		t.Fatalf("ServiceByID(3) = %+v, %v", svc, ok)
	}
	if _, ok := s.ServiceByID("99"); ok {
		t.Fatal("ServiceByID(99) should miss")
	}

	stylist, ok := s.StylistByID("s1")
	if !ok || stylist.Name != "Jonathan" {
		t.Fatalf("StylistByID(s1) = %+v, %v", stylist, ok)
	}
	if _, ok := s.StylistByID("nobody"); ok {
		t.Fatal("StylistByID(nobody) should miss")
	}

	outlet, ok := s.OutletByID("o2")
	if !ok || outlet.Name != "Oviss - Melaka Raya" {
		t.Fatalf("OutletByID(o2) = %+v, %v", outlet, ok)
	}
	if _, ok := s.OutletByID(""); ok {
		t.Fatal("OutletByID(empty) should miss")
	}
}

func TestAllSlotsSortedUnion(t *testing.T) {
	slots := Default().AllSlots()
	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("AllSlots = %v, want %v", slots, want)
	}
}

func TestSeedSizes(t *testing.T) {
	s := Default()
	if len(s.Services()) != 5 || len(s.Stylists()) != 2 || len(s.Outlets()) != 2 {
		t.Fatalf("seed catalog sizes: %d services, %d stylists, %d outlets",
			len(s.Services()), len(s.Stylists()), len(s.Outlets()))
	}
}
