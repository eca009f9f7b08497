package models

import (
	"reflect"
	"testing"
)

func fixtureDataset() Dataset {
	rows := []RawRecord{
		{Location: "CA", LocationType: "State", Race: "White", TimeFrame: "2019", Data: "5", DataFormat: "Number"},
		{Location: "CA", LocationType: "State", Race: "Black", TimeFrame: "2019", Data: "7", DataFormat: "Number"},
		{Location: "CA", LocationType: "State", Race: "White", TimeFrame: "2020", Data: "6", DataFormat: "Number"},
		{Location: "TX", LocationType: "State", Race: "White", TimeFrame: "2019", Data: "9", DataFormat: "Number"},
		{Location: "United States", LocationType: "Nation", Race: "White", TimeFrame: "2019", Data: "400", DataFormat: "Number"},
	}
	return BuildDataset(rows, FormatNumber)
}

func TestFilterEmptyLocationReturnsAll(t *testing.T) {
	ds := fixtureDataset()

	got := Filter(ds, Selection{})
	if !reflect.DeepEqual(got, ds.Records) {
		t.Errorf("empty location should return the whole table, got %d of %d rows", len(got), len(ds.Records))
	}
}

func TestFilterMatchesAllThreeFields(t *testing.T) {
	ds := fixtureDataset()
	sel := Selection{LocationType: "State", Location: "CA", Race: "White"}

	got := Filter(ds, sel)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows for CA/White, got %d", len(got))
	}
	for _, r := range got {
		if r.Location != "CA" || r.Race != "White" || r.LocationType != "State" {
			t.Errorf("row %+v does not match selection", r)
		}
	}
}

func TestFilterDeterministic(t *testing.T) {
	ds := fixtureDataset()
	sel := Selection{LocationType: "State", Location: "CA", Race: "White"}

	first := Filter(ds, sel)
	second := Filter(ds, sel)
	if !reflect.DeepEqual(first, second) {
		t.Error("two identical filter calls returned different rows")
	}
}

func TestLocationsScopedAndDeduplicated(t *testing.T) {
	ds := fixtureDataset()

	got := Locations(ds, "State")
	want := []string{"CA", "TX"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Locations(State) = %v, want %v", got, want)
	}

	nation := Locations(ds, "Nation")
	if !reflect.DeepEqual(nation, []string{"United States"}) {
		t.Errorf("Locations(Nation) = %v", nation)
	}
}

func TestRaces(t *testing.T) {
	ds := fixtureDataset()

	got := Races(ds)
	want := []string{"White", "Black"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Races = %v, want %v", got, want)
	}
}

func TestLocationTypes(t *testing.T) {
	ds := fixtureDataset()

	got := LocationTypes(ds)
	want := []string{"State", "Nation"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LocationTypes = %v, want %v", got, want)
	}
}
