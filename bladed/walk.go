package bladed

// WalkFunc is called for each (header, variable) pair during traversal.
// Headers without a VARIAB list are visited once with an empty variable
// name. Return an error to stop walking.
type WalkFunc func(h *Header, variable string) error

// Walk visits every variable of every scanned header in scan order.
//
// Example:
//
//	Walk(rs, func(h *Header, v string) error {
//	    fmt.Println(h.Name(), v)
//	    return nil
//	})
func Walk(rs *ResultSet, fn WalkFunc) error {
	if rs.headers == nil {
		return ErrNotScanned
	}
	for _, h := range rs.headers {
		vars := h.Variables()
		if len(vars) == 0 {
			if err := fn(h, ""); err != nil {
				return err
			}
			continue
		}
		for _, v := range vars {
			if err := fn(h, v); err != nil {
				return err
			}
		}
	}
	return nil
}
