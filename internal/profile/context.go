package profile

import "github.com/gin-gonic/gin"

const ContextKey = "profile"

func Set(c *gin.Context, p Profile) {
	c.Set(ContextKey, p)
	c.Set("user_id", p.User.ID)
}

// From returns the profile the session middleware attached.
func From(c *gin.Context) (Profile, bool) {
	v, ok := c.Get(ContextKey)
	if !ok {
		return Profile{}, false
	}
	p, ok := v.(Profile)
	return p, ok
}
