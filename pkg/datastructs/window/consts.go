package window

// initialStorage is the ring length allocated by the first Push, unless the
// capacity rounds to less.
const initialStorage = 16
