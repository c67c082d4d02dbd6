package models

import "testing"

func TestLeaderboardSupersedes(t *testing.T) {
	cases := []struct {
		name string
		new  LeaderboardEntry
		old  *LeaderboardEntry
		want bool
	}{
		{"no previous entry", LeaderboardEntry{Score: 1, TimeTaken: 60}, nil, true},
		{"higher score", LeaderboardEntry{Score: 5, TimeTaken: 60}, &LeaderboardEntry{Score: 3, TimeTaken: 10}, true},
		{"lower score", LeaderboardEntry{Score: 2, TimeTaken: 10}, &LeaderboardEntry{Score: 3, TimeTaken: 60}, false},
		{"equal score faster", LeaderboardEntry{Score: 3, TimeTaken: 20}, &LeaderboardEntry{Score: 3, TimeTaken: 60}, true},
		{"equal score slower", LeaderboardEntry{Score: 3, TimeTaken: 90}, &LeaderboardEntry{Score: 3, TimeTaken: 60}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.new.Supersedes(tc.old); got != tc.want {
				t.Errorf("Supersedes = %v, want %v", got, tc.want)
			}
		})
	}
}
