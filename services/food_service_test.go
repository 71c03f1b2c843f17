package services

import (
	"errors"
	"testing"
)

func TestFoodEntryInput_Validate(t *testing.T) {
	t.Parallel()

	manual := FoodEntryInput{
		Email: "a@b.c", Date: "2026-09-01", Meal: "Lunch",
		Name: "Egg", Unit: "1", Quantity: 2,
		Calories: 140, Protein: 12, Carbs: 2, Fats: 10,
	}

	cases := []struct {
		name    string
		mutate  func(in *FoodEntryInput)
		wantErr bool
	}{
		{"valid manual entry", func(in *FoodEntryInput) {}, false},
		{"catalog entry skips manual checks", func(in *FoodEntryInput) {
			in.FoodID = "egg"
			in.Name = ""
			in.Calories = 0
		}, false},
		{"missing name", func(in *FoodEntryInput) { in.Name = "" }, true},
		{"blank name", func(in *FoodEntryInput) { in.Name = "   " }, true},
		{"negative calories", func(in *FoodEntryInput) { in.Calories = -1 }, true},
		{"negative protein", func(in *FoodEntryInput) { in.Protein = -1 }, true},
		{"negative carbs", func(in *FoodEntryInput) { in.Carbs = -1 }, true},
		{"negative fats", func(in *FoodEntryInput) { in.Fats = -1 }, true},
		{"zero nutrients allowed", func(in *FoodEntryInput) {
			in.Calories = 0
			in.Protein = 0
			in.Carbs = 0
			in.Fats = 0
		}, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			in := manual
			tc.mutate(&in)

			err := in.validate()
			if tc.wantErr {
				if !errors.Is(err, ErrEntryInvalid) {
					t.Errorf("validate() err = %v, want ErrEntryInvalid", err)
				}
				return
			}
			if err != nil {
				t.Errorf("validate() err = %v, want nil", err)
			}
		})
	}
}
