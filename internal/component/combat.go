package component

// Combat holds an actor's offensive stat and its shield pool.
// Shield absorbs incoming damage point for point until it is empty.
type Combat struct {
	Attack int
	Shield int
}

// Absorb soaks up to dmg points with the shield and returns what gets through.
func (c *Combat) Absorb(dmg int) int {
	if dmg <= 0 {
		return 0
	}
	if c.Shield <= 0 {
		return dmg
	}
	absorbed := min(c.Shield, dmg)
	c.Shield -= absorbed
	return dmg - absorbed
}
