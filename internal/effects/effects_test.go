package effects

import (
	"testing"
	"time"

	"github.com/samdwyer/darkmine/internal/world"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSwingExpiry(t *testing.T) {
	s := MiningSwing{CreatedAt: epoch}

	tests := []struct {
		after time.Duration
		want  bool
	}{
		{0, false},
		{299 * time.Millisecond, false},
		{300 * time.Millisecond, true},
		{time.Second, true},
	}
	for _, tt := range tests {
		if got := s.Expired(epoch.Add(tt.after)); got != tt.want {
			t.Errorf("Expired(+%v) = %v, want %v", tt.after, got, tt.want)
		}
	}
}

func TestParticleExpiry(t *testing.T) {
	p := Particle{CreatedAt: epoch}

	if p.Expired(epoch.Add(1499 * time.Millisecond)) {
		t.Error("particle expired before 1500ms")
	}
	if !p.Expired(epoch.Add(1500 * time.Millisecond)) {
		t.Error("particle still alive at 1500ms")
	}
}

func TestProgress(t *testing.T) {
	p := Particle{CreatedAt: epoch}

	if got := p.Progress(epoch.Add(-time.Second)); got != 0 {
		t.Errorf("Progress(before creation) = %v, want 0", got)
	}
	if got := p.Progress(epoch.Add(750 * time.Millisecond)); got != 0.5 {
		t.Errorf("Progress(750ms) = %v, want 0.5", got)
	}
	if got := p.Progress(epoch.Add(time.Hour)); got != 1 {
		t.Errorf("Progress(1h) = %v, want 1", got)
	}
}

func TestQueuePurge(t *testing.T) {
	q := NewQueue()
	pos := world.Position{X: 3, Y: 4}

	q.AddSwing(pos, world.DirUp, epoch)
	q.AddParticle(pos, ParticleCoal, epoch)
	q.AddParticle(pos, ParticleOre, epoch.Add(time.Second))

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}

	now := epoch.Add(400 * time.Millisecond)
	if got := len(q.Swings(now)); got != 0 {
		t.Errorf("Swings(+400ms) has %d entries, want 0", got)
	}
	if got := len(q.Particles(now)); got != 2 {
		t.Errorf("Particles(+400ms) has %d entries, want 2", got)
	}
	// Queries do not remove anything.
	if q.Len() != 3 {
		t.Errorf("Len() after query = %d, want 3", q.Len())
	}

	if removed := q.Purge(epoch.Add(2 * time.Second)); removed != 2 {
		t.Errorf("Purge() removed %d, want 2", removed)
	}
	left := q.Particles(epoch.Add(2 * time.Second))
	if len(left) != 1 || left[0].Kind != ParticleOre {
		t.Errorf("remaining particles = %+v, want the ore burst", left)
	}
}

func TestQueueIDsAreUnique(t *testing.T) {
	q := NewQueue()
	seen := map[uint64]bool{}

	for i := 0; i < 5; i++ {
		s := q.AddSwing(world.Position{}, world.DirDown, epoch)
		p := q.AddParticle(world.Position{}, ParticleRock, epoch)
		if seen[s.ID] || seen[p.ID] {
			t.Fatalf("duplicate id at iteration %d", i)
		}
		seen[s.ID] = true
		seen[p.ID] = true
	}

	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", q.Len())
	}
	if s := q.AddSwing(world.Position{}, world.DirDown, epoch); seen[s.ID] {
		t.Error("ids restarted after Clear()")
	}
}

func TestParticleKindString(t *testing.T) {
	tests := []struct {
		kind ParticleKind
		want string
	}{
		{ParticleRock, "rock"},
		{ParticleCoal, "coal"},
		{ParticleOre, "ore"},
		{ParticleDiamond, "diamond"},
		{ParticleTrap, "trap"},
		{ParticleKind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ParticleKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
