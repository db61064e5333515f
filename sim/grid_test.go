package sim

import "testing"

func TestPositionToCell(t *testing.T) {
	tests := []struct {
		name    string
		pos     Vec
		wantCol int
		wantRow int
	}{
		{"origin", Vec{X: 0, Y: 0}, 0, 0},
		{"far corner", Vec{X: 300, Y: 300}, 15, 15},
		{"rounds to nearest", Vec{X: 29.9, Y: 9.99}, 1, 0},
		{"half rounds up", Vec{X: 10, Y: 50}, 1, 3},
		{"below zero clamps", Vec{X: -12, Y: 3}, 0, 0},
		{"beyond edge clamps", Vec{X: 345, Y: 309.9}, 15, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := PositionToCell(tt.pos, DefaultBoxScale)
			if col != tt.wantCol || row != tt.wantRow {
				t.Errorf("PositionToCell(%v) = (%d, %d), want (%d, %d)", tt.pos, col, row, tt.wantCol, tt.wantRow)
			}
		})
	}
}

func TestProject(t *testing.T) {
	ps := []Particle{
		{Position: Vec{X: 20, Y: 40}},
		{Position: Vec{X: 21, Y: 39}}, // same cell as the first
		{Position: Vec{X: 299, Y: 0}},
	}
	g := Project(ps, DefaultBoxScale)
	if !g[1][2] || !g[15][0] {
		t.Errorf("expected cells (1,2) and (15,0) lit")
	}
	if n := g.Count(); n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}
	if empty := Project(nil, DefaultBoxScale); empty.Count() != 0 {
		t.Errorf("empty projection lit %d cells", empty.Count())
	}
}

func TestCollisionState(t *testing.T) {
	tests := []struct {
		in           CollisionState
		wall, pair   CollisionState
		name         string
		touchesWall  bool
		touchesOther bool
	}{
		{CollisionNone, CollisionWall, CollisionParticle, "none", false, false},
		{CollisionWall, CollisionWall, CollisionWallAndParticle, "wall", true, false},
		{CollisionParticle, CollisionWallAndParticle, CollisionParticle, "particle", false, true},
		{CollisionWallAndParticle, CollisionWallAndParticle, CollisionWallAndParticle, "wall+particle", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.withWall(); got != tt.wall {
				t.Errorf("withWall() = %v, want %v", got, tt.wall)
			}
			if got := tt.in.withParticle(); got != tt.pair {
				t.Errorf("withParticle() = %v, want %v", got, tt.pair)
			}
			if tt.in.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.in.String(), tt.name)
			}
			if tt.in.TouchedWall() != tt.touchesWall || tt.in.TouchedParticle() != tt.touchesOther {
				t.Errorf("touch flags = %v/%v", tt.in.TouchedWall(), tt.in.TouchedParticle())
			}
		})
	}
}
