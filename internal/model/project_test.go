package model

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestProject_Duration(t *testing.T) {
	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  int
	}{
		{"both nil", nil, nil, 0},
		{"missing end", date(2023, time.January, 1), nil, 0},
		{"same month", date(2023, time.January, 1), date(2023, time.January, 20), 0},
		{"six months", date(2023, time.January, 15), date(2023, time.July, 1), 6},
		{"across years", date(2022, time.November, 1), date(2024, time.February, 1), 15},
		{"inverted range", date(2024, time.June, 1), date(2023, time.June, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Project{StartDate: tt.start, EndDate: tt.end}
			if got := p.Duration(); got != tt.want {
				t.Errorf("Duration() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProject_NormalizeMainImage_KeepsFirstMain(t *testing.T) {
	p := &Project{Images: []ProjectImage{
		{URL: "a.jpg"},
		{URL: "b.jpg", IsMain: true},
		{URL: "c.jpg", IsMain: true},
	}}
	p.NormalizeMainImage()

	if p.Images[0].IsMain {
		t.Error("image 0 should not be main")
	}
	if !p.Images[1].IsMain {
		t.Error("image 1 should stay main")
	}
	if p.Images[2].IsMain {
		t.Error("image 2 should have been demoted")
	}
}

func TestProject_NormalizeMainImage_DefaultsToFirst(t *testing.T) {
	p := &Project{Images: []ProjectImage{{URL: "a.jpg"}, {URL: "b.jpg"}}}
	p.NormalizeMainImage()

	if !p.Images[0].IsMain {
		t.Error("first image should become main when none claims it")
	}
}

func TestProject_NormalizeMainImage_NoImages(t *testing.T) {
	p := &Project{}
	p.NormalizeMainImage() // must not panic
}
