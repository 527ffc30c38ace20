package construct

import "errors"

// ErrInfeasible indicates the search exhausted its work stack before
// reaching day D: no Hamiltonian tour exists under the day constraints of
// this instance.
var ErrInfeasible = errors.New("construct: stack depleted, no Hamiltonian tour exists")
