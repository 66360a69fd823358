package rescue

// Chest is the daily reward presentation unlocked by a solved challenge.
// The payout itself happens at challenge time; the chest only gates the
// celebratory reveal.
type Chest struct {
	unlocked bool
	amount   int
}

// Unlock arms the chest with the amount already credited.
func (c *Chest) Unlock(amount int) {
	c.unlocked = true
	c.amount = amount
}

// Unlocked reports whether there is an unclaimed reward to show.
func (c *Chest) Unlocked() bool {
	return c.unlocked
}

// Claim atomically checks and clears the unlocked flag, returning the
// reward amount for display. A second claim gets (0, false) no matter
// how fast the clicks come.
func (c *Chest) Claim() (int, bool) {
	if !c.unlocked {
		return 0, false
	}
	c.unlocked = false
	amount := c.amount
	c.amount = 0
	return amount, true
}
