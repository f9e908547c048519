package crypto

import (
	. "gopkg.in/check.v1"
)

type HashSuite struct{}

var _ = Suite(&HashSuite{})

func accountCheck(s string) Hash {
	a, err := NewRippleHash(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (s *HashSuite) TestHashes(c *C) {
	c.Check(accountCheck("0").Value().String(), Equals, "0")
	c.Check(accountCheck("0").String(), Equals, ACCOUNT_ZERO)
	c.Check(accountCheck("1").Value().String(), Equals, "1")
	c.Check(accountCheck("1").String(), Equals, ACCOUNT_ONE)
	c.Check(accountCheck(ACCOUNT_ZERO).String(), Equals, ACCOUNT_ZERO)
	c.Check(accountCheck(ROOT).String(), Equals, ROOT)
	c.Check(accountCheck(ROOT).Version(), Equals, RIPPLE_ACCOUNT_ID)
	c.Check(len(accountCheck(ROOT).Payload()), Equals, 20)

	_, err := NewRippleHash("rrrrrrrrrrrrrrrrrrrrrhoLvT")
	c.Check(err, ErrorMatches, "Bad Base58 checksum.*")
}

func (s *HashSuite) TestHashCheck(c *C) {
	_, err := NewRippleHashCheck(ROOT, RIPPLE_ACCOUNT_ID)
	c.Check(err, IsNil)
	_, err = NewRippleHashCheck(ROOT, RIPPLE_FAMILY_SEED)
	c.Check(err, ErrorMatches, "Bad version for: .*")
	_, err = NewAccountId(make([]byte, 21))
	c.Check(err, ErrorMatches, "Hash is wrong size.*")
}

func (s *HashSuite) TestClone(c *C) {
	h := accountCheck(ROOT)
	clone := h.Clone()
	c.Check(clone.String(), Equals, h.String())
	text, err := clone.MarshalText()
	c.Check(err, IsNil)
	c.Check(string(text), Equals, ROOT)
}
