package dedupe

// Package dedupe provides the shared singleflight group used to deduplicate
// concurrent battle resolutions. Resolution is a deterministic function of
// (boards, seed), so callers sharing a key can safely share one execution
// and its persisted record.

import "golang.org/x/sync/singleflight"

// BattleGroup deduplicates battle resolutions keyed by the player ID plus
// the encoded (player board, enemy board, seed) triple.
var BattleGroup singleflight.Group
