package models

import "testing"

func TestInternalKind(t *testing.T) {
	tests := []struct {
		name     string
		external string
		allowed  []string
		want     string
		wantOK   bool
	}{
		{"booking service alias", "service", BookableKinds, KindSubservice, true},
		{"booking rental alias", "rental", BookableKinds, KindRental, true},
		{"booking internal subservice", "Subservice", BookableKinds, KindSubservice, true},
		{"booking internal rental", "Rental", BookableKinds, KindRental, true},
		{"booking rejects inventory", "Inventory", BookableKinds, "", false},
		{"booking rejects inventory alias", "inventory", BookableKinds, "", false},
		{"booking rejects unknown", "boat", BookableKinds, "", false},
		{"booking rejects empty", "", BookableKinds, "", false},
		{"payment service alias", "service", PayableKinds, KindService, true},
		{"payment inventory alias", "inventory", PayableKinds, KindInventory, true},
		{"payment rental alias", "rental", PayableKinds, KindRental, true},
		{"payment internal inventory", "Inventory", PayableKinds, KindInventory, true},
		{"payment rejects subservice", "Subservice", PayableKinds, "", false},
		{"payment rejects vehicle", "Vehicle", PayableKinds, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InternalKind(tt.external, tt.allowed)
			if ok != tt.wantOK {
				t.Fatalf("InternalKind(%q) ok = %v, want %v", tt.external, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("InternalKind(%q) = %q, want %q", tt.external, got, tt.want)
			}
		})
	}
}

func TestExternalKind(t *testing.T) {
	tests := []struct {
		internal string
		want     string
	}{
		{KindSubservice, "service"},
		{KindService, "service"},
		{KindRental, "rental"},
		{KindInventory, "inventory"},
		{"Dangling", "Dangling"}, // unknown tags pass through untranslated
	}

	for _, tt := range tests {
		if got := ExternalKind(tt.internal); got != tt.want {
			t.Errorf("ExternalKind(%q) = %q, want %q", tt.internal, got, tt.want)
		}
	}
}

func TestExternalInternalRoundTrip(t *testing.T) {
	// Every internal tag must map out and back within its own entity's set.
	for _, kind := range BookableKinds {
		got, ok := InternalKind(ExternalKind(kind), BookableKinds)
		if !ok || got != kind {
			t.Errorf("bookable round trip of %q = %q, ok %v", kind, got, ok)
		}
	}
	for _, kind := range PayableKinds {
		got, ok := InternalKind(ExternalKind(kind), PayableKinds)
		if !ok || got != kind {
			t.Errorf("payable round trip of %q = %q, ok %v", kind, got, ok)
		}
	}
}

func TestTargetDocForKind(t *testing.T) {
	tests := []struct {
		kind  string
		check func(interface{}) bool
	}{
		{KindRental, func(doc interface{}) bool { _, ok := doc.(*Rental); return ok }},
		{KindSubservice, func(doc interface{}) bool { _, ok := doc.(*Subservice); return ok }},
		{KindService, func(doc interface{}) bool { _, ok := doc.(*Service); return ok }},
		{KindInventory, func(doc interface{}) bool { _, ok := doc.(*Inventory); return ok }},
	}

	for _, tt := range tests {
		doc, ok := TargetDocForKind(tt.kind)
		if !ok {
			t.Errorf("TargetDocForKind(%q) ok = false", tt.kind)
			continue
		}
		if !tt.check(doc) {
			t.Errorf("TargetDocForKind(%q) = %T, wrong concrete type", tt.kind, doc)
		}
	}

	for _, kind := range []string{"rental", "Vehicle", ""} {
		if doc, ok := TargetDocForKind(kind); ok || doc != nil {
			t.Errorf("TargetDocForKind(%q) = (%v, %v), want (nil, false)", kind, doc, ok)
		}
	}
}

func TestCollectionForKind(t *testing.T) {
	tests := []struct {
		kind   string
		coll   string
		wantOK bool
	}{
		{KindRental, "rentals", true},
		{KindSubservice, "subservices", true},
		{KindService, "services", true},
		{KindInventory, "inventory", true},
		{"rental", "", false}, // external alias is not a storage tag
		{"Vehicle", "", false},
	}

	for _, tt := range tests {
		coll, ok := CollectionForKind(tt.kind)
		if ok != tt.wantOK || coll != tt.coll {
			t.Errorf("CollectionForKind(%q) = (%q, %v), want (%q, %v)", tt.kind, coll, ok, tt.coll, tt.wantOK)
		}
	}
}
