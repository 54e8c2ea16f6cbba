package progress

import "testing"

func TestApplyXP(t *testing.T) {
	tests := []struct {
		name   string
		state  LevelState
		amount int
		want   LevelState
	}{
		{
			name:   "multi-level jump from fresh state",
			state:  LevelState{CurrentXP: 0, Level: 1, RequiredXP: 100},
			amount: 250,
			want:   LevelState{CurrentXP: 50, Level: 3, RequiredXP: 300},
		},
		{
			name:   "single level up",
			state:  LevelState{CurrentXP: 80, Level: 1, RequiredXP: 100},
			amount: 30,
			want:   LevelState{CurrentXP: 10, Level: 2, RequiredXP: 200},
		},
		{
			name:   "no level change",
			state:  LevelState{CurrentXP: 10, Level: 2, RequiredXP: 200},
			amount: 50,
			want:   LevelState{CurrentXP: 60, Level: 2, RequiredXP: 200},
		},
		{
			name:   "exact threshold",
			state:  LevelState{CurrentXP: 0, Level: 1, RequiredXP: 100},
			amount: 100,
			want:   LevelState{CurrentXP: 0, Level: 2, RequiredXP: 200},
		},
		{
			// The bar resets modulo the OLD threshold. 250 XP on a
			// 200-needed bar overflows 50 into level 4, whose bar
			// shows 130/400.
			name:   "old-threshold modulus after jump",
			state:  LevelState{CurrentXP: 80, Level: 3, RequiredXP: 200},
			amount: 250,
			want:   LevelState{CurrentXP: 130, Level: 4, RequiredXP: 400},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyXP(tt.state, tt.amount)
			if got != tt.want {
				t.Errorf("ApplyXP(%+v, %d) = %+v, want %+v",
					tt.state, tt.amount, got, tt.want)
			}
		})
	}
}

func TestApplyXPZeroIsNoOp(t *testing.T) {
	s := LevelState{CurrentXP: 42, Level: 2, RequiredXP: 200}
	if got := ApplyXP(s, 0); got != s {
		t.Errorf("ApplyXP(s, 0) = %+v, want %+v", got, s)
	}
}

func TestApplyXPRepairsZeroValueState(t *testing.T) {
	// A zero-value LevelState (e.g. from a hand-written record) must
	// not divide by zero.
	got := ApplyXP(LevelState{}, 50)
	want := LevelState{CurrentXP: 50, Level: 1, RequiredXP: 100}
	if got != want {
		t.Errorf("ApplyXP(zero, 50) = %+v, want %+v", got, want)
	}
}
