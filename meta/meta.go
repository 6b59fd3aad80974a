// meta/meta.go
package meta

// MAX_ROUNDS defines the round budget of the value iteration.
const MAX_ROUNDS = 10000

// MAX_STICKS defines the largest number of sticks a hand can hold.
const MAX_STICKS = 16

// MAX_PITS defines the number of pits in the lid.
const MAX_PITS = 5

// TOLERANCE defines the max entry-wise change at which iteration stops early.
const TOLERANCE = 1e-12

// MAX_MOVES defines the number of decisions after which a simulated game is abandoned.
const MAX_MOVES = 10000

// WORKERS defines the number of goroutines sharing a sweep.
const WORKERS = 1

// REPORT_LID defines the lid count of the printed report rows.
const REPORT_LID = 4

// REPORT_MAX_TOTAL bounds mine plus theirs in the printed report.
const REPORT_MAX_TOTAL = 11

// GAMES defines the number of simulated games per experiment.
const GAMES = 1000

// CONFIDENCE defines the confidence in percent of experiment win rate intervals.
const CONFIDENCE = 95

// START_STICKS defines the hand of each player at the start of a simulated game.
const START_STICKS = 6

// EPISODES defines the search episodes per decision of a tree search agent.
const EPISODES = 500
