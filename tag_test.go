package popmeter_test

import (
	"testing"

	"github.com/simonhull/popmeter"
)

func TestTag_Empty(t *testing.T) {
	tag := popmeter.NewTag(popmeter.Version24)

	if tag.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tag.Len())
	}
	if _, ok := tag.Rating(); ok {
		t.Error("Rating() should be absent on an empty tag")
	}
	if _, ok := tag.StarRating(); ok {
		t.Error("StarRating() should be absent on an empty tag")
	}
	if _, ok := tag.PlayCount(); ok {
		t.Error("PlayCount() should be absent on an empty tag")
	}
	if _, ok := tag.RatingEmail(); ok {
		t.Error("RatingEmail() should be absent on an empty tag")
	}
}

func TestTag_SetRating_CreatesFrame(t *testing.T) {
	tag := popmeter.NewTag(popmeter.Version24)
	tag.SetRating(196)

	if tag.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tag.Len())
	}

	rating, ok := tag.Rating()
	if !ok || rating != 196 {
		t.Errorf("Rating() = (%d, %v), want (196, true)", rating, ok)
	}

	// The created frame is keyed by the empty email.
	email, ok := tag.RatingEmail()
	if !ok || email != "" {
		t.Errorf("RatingEmail() = (%q, %v), want (\"\", true)", email, ok)
	}
	if _, ok := tag.Get(popmeter.PopularimeterKey("")); !ok {
		t.Error("frame should be stored under the empty-email key")
	}

	// The fresh frame has no play count.
	if _, ok := tag.PlayCount(); ok {
		t.Error("PlayCount() should stay absent after SetRating")
	}
}

func TestTag_SetStarRating(t *testing.T) {
	tag := popmeter.NewTag(popmeter.Version24)
	tag.SetStarRating(5)

	rating, ok := tag.Rating()
	if !ok || rating != 255 {
		t.Errorf("Rating() = (%d, %v), want (255, true)", rating, ok)
	}
	stars, ok := tag.StarRating()
	if !ok || stars != 5 {
		t.Errorf("StarRating() = (%d, %v), want (5, true)", stars, ok)
	}

	// Out-of-scale values store rating 0.
	tag.SetStarRating(9)
	rating, _ = tag.Rating()
	if rating != 0 {
		t.Errorf("Rating() after SetStarRating(9) = %d, want 0", rating)
	}
}

func TestTag_FirstMatchIsSmallestEmail(t *testing.T) {
	tag := popmeter.NewTag(popmeter.Version24)

	second := popmeter.NewPopularimeter(popmeter.Version24, "zoe@example.com", 32)
	second.SetPlayCount(7)
	tag.Put(second)

	first := popmeter.NewPopularimeter(popmeter.Version24, "amy@example.com", 224)
	tag.Put(first)

	if tag.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tag.Len())
	}

	// Accessors read the frame with the smallest email, insertion
	// order notwithstanding.
	email, _ := tag.RatingEmail()
	if email != "amy@example.com" {
		t.Errorf("RatingEmail() = %q, want amy@example.com", email)
	}
	rating, _ := tag.Rating()
	if rating != 224 {
		t.Errorf("Rating() = %d, want 224", rating)
	}

	// The first frame has no play count, so the tag reports none even
	// though another frame carries one.
	if _, ok := tag.PlayCount(); ok {
		t.Error("PlayCount() should report the first frame's absent counter")
	}
}

func TestTag_SetRating_TargetsFirstOnly(t *testing.T) {
	tag := popmeter.NewTag(popmeter.Version24)
	tag.Put(popmeter.NewPopularimeter(popmeter.Version24, "amy@example.com", 10))
	tag.Put(popmeter.NewPopularimeter(popmeter.Version24, "zoe@example.com", 20))

	tag.SetRating(255)

	frame, _ := tag.Get(popmeter.PopularimeterKey("amy@example.com"))
	if p := frame.(*popmeter.Popularimeter); p.Rating() != 255 {
		t.Errorf("first frame rating = %d, want 255", p.Rating())
	}

	frame, _ = tag.Get(popmeter.PopularimeterKey("zoe@example.com"))
	if p := frame.(*popmeter.Popularimeter); p.Rating() != 20 {
		t.Errorf("second frame rating = %d, want 20 (untouched)", p.Rating())
	}
}

func TestTag_ClearRating_RemovesAll(t *testing.T) {
	tag := popmeter.NewTag(popmeter.Version24)
	tag.Put(popmeter.NewPopularimeter(popmeter.Version24, "amy@example.com", 10))
	tag.Put(popmeter.NewPopularimeter(popmeter.Version24, "zoe@example.com", 20))
	keeper, _ := popmeter.ParseFrame("AENC", popmeter.Version24, nil, []byte{0x01})
	tag.Put(keeper)

	tag.ClearRating()

	if _, ok := tag.Rating(); ok {
		t.Error("Rating() should be absent after ClearRating")
	}
	if tag.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (non-rating frames survive)", tag.Len())
	}
	if _, ok := tag.Get(popmeter.UnknownKey("AENC")); !ok {
		t.Error("unknown frame should survive ClearRating")
	}
}

func TestTag_SetPlayCount_CreatesCarrierFrame(t *testing.T) {
	tag := popmeter.NewTag(popmeter.Version24)
	tag.SetPlayCount(42)

	if tag.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tag.Len())
	}

	// The carrier frame exists with rating 0: no rating is known.
	rating, ok := tag.Rating()
	if !ok || rating != 0 {
		t.Errorf("Rating() = (%d, %v), want (0, true)", rating, ok)
	}
	count, ok := tag.PlayCount()
	if !ok || count != 42 {
		t.Errorf("PlayCount() = (%d, %v), want (42, true)", count, ok)
	}
}

func TestTag_PlayCountZeroDistinctFromAbsent(t *testing.T) {
	tag := popmeter.NewTag(popmeter.Version24)
	tag.SetRating(128)

	if _, ok := tag.PlayCount(); ok {
		t.Fatal("PlayCount() should start absent")
	}

	tag.SetPlayCount(0)
	count, ok := tag.PlayCount()
	if !ok {
		t.Fatal("PlayCount() should be present after SetPlayCount(0)")
	}
	if count != 0 {
		t.Errorf("PlayCount() = %d, want 0", count)
	}
}

func TestTag_SetRatingEmail_Rekeys(t *testing.T) {
	tag := popmeter.NewTag(popmeter.Version24)
	tag.SetRating(196)
	tag.SetPlayCount(42)

	tag.SetRatingEmail("user@example.com")

	if _, ok := tag.Get(popmeter.PopularimeterKey("")); ok {
		t.Error("the old key should be gone after the rename")
	}

	frame, ok := tag.Get(popmeter.PopularimeterKey("user@example.com"))
	if !ok {
		t.Fatal("the frame should be reachable under the new key")
	}
	p := frame.(*popmeter.Popularimeter)
	if p.Rating() != 196 {
		t.Errorf("Rating() = %d, want 196 (carried through rename)", p.Rating())
	}
	count, present := p.PlayCount()
	if !present || count != 42 {
		t.Errorf("PlayCount() = (%d, %v), want (42, true)", count, present)
	}
	if p.Header().Size != uint32(len(p.Payload())) {
		t.Errorf("Header().Size = %d, want %d after rename", p.Header().Size, len(p.Payload()))
	}
}

func TestTag_SetRatingEmail_NoFrameIsNoop(t *testing.T) {
	tag := popmeter.NewTag(popmeter.Version24)
	tag.SetRatingEmail("user@example.com")

	if tag.Len() != 0 {
		t.Errorf("Len() = %d, want 0 (rename without a frame writes nothing)", tag.Len())
	}
}

func TestTag_SetRatingEmail_ReplacesDestination(t *testing.T) {
	tag := popmeter.NewTag(popmeter.Version24)
	tag.Put(popmeter.NewPopularimeter(popmeter.Version24, "amy@example.com", 10))
	tag.Put(popmeter.NewPopularimeter(popmeter.Version24, "zoe@example.com", 20))

	// Renaming the first frame onto an occupied key replaces that frame.
	tag.SetRatingEmail("zoe@example.com")

	if tag.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tag.Len())
	}
	frame, _ := tag.Get(popmeter.PopularimeterKey("zoe@example.com"))
	if p := frame.(*popmeter.Popularimeter); p.Rating() != 10 {
		t.Errorf("surviving rating = %d, want 10 (the renamed frame)", p.Rating())
	}
}

func TestTag_Put_OverwritesSameKey(t *testing.T) {
	tag := popmeter.NewTag(popmeter.Version24)
	tag.Put(popmeter.NewPopularimeter(popmeter.Version24, "user@example.com", 10))
	tag.Put(popmeter.NewPopularimeter(popmeter.Version24, "user@example.com", 255))

	if tag.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (same key overwrites)", tag.Len())
	}
	rating, _ := tag.Rating()
	if rating != 255 {
		t.Errorf("Rating() = %d, want 255 (last write wins)", rating)
	}
}

func TestTag_Delete(t *testing.T) {
	tag := popmeter.NewTag(popmeter.Version24)
	tag.Put(popmeter.NewPopularimeter(popmeter.Version24, "user@example.com", 10))

	if !tag.Delete(popmeter.PopularimeterKey("user@example.com")) {
		t.Error("Delete() = false, want true for a present key")
	}
	if tag.Delete(popmeter.PopularimeterKey("user@example.com")) {
		t.Error("Delete() = true, want false for an absent key")
	}
	if tag.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tag.Len())
	}
}

func TestTag_All_DeterministicOrder(t *testing.T) {
	tag := popmeter.NewTag(popmeter.Version24)
	tag.Put(popmeter.NewPopularimeter(popmeter.Version24, "zoe@example.com", 20))
	unknown, _ := popmeter.ParseFrame("AENC", popmeter.Version24, nil, []byte{0x01})
	tag.Put(unknown)
	tag.Put(popmeter.NewPopularimeter(popmeter.Version24, "amy@example.com", 10))

	want := []popmeter.FrameKey{
		popmeter.UnknownKey("AENC"),
		popmeter.PopularimeterKey("amy@example.com"),
		popmeter.PopularimeterKey("zoe@example.com"),
	}

	for range 3 {
		var got []popmeter.FrameKey
		for key := range tag.All() {
			got = append(got, key)
		}
		if len(got) != len(want) {
			t.Fatalf("All() yielded %d keys, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("All()[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	}
}

func TestTag_Version(t *testing.T) {
	tag := popmeter.NewTag(popmeter.Version23)
	if tag.Version() != popmeter.Version23 {
		t.Errorf("Version() = %v, want Version23", tag.Version())
	}

	// Frames created by commands carry the tag's version.
	tag.SetRating(1)
	frame, _ := tag.Get(popmeter.PopularimeterKey(""))
	if frame.Header().Version != popmeter.Version23 {
		t.Errorf("created frame version = %v, want Version23", frame.Header().Version)
	}
}
