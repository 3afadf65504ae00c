package primes

import (
	"fmt"
	"io"
)

// Sieve returns every prime <= limit in ascending order, using the sieve of Eratosthenes.
func Sieve(limit int) []int {
	if limit < 2 {
		return nil
	}

	composite := make([]bool, limit+1)
	for n := 2; n*n <= limit; n++ {
		if composite[n] {
			continue
		}
		for multiple := n * n; multiple <= limit; multiple += n {
			composite[multiple] = true
		}
	}

	result := make([]int, 0, limit/2)
	for n := 2; n <= limit; n++ {
		if !composite[n] {
			result = append(result, n)
		}
	}

	return result
}

// IsPrime - trial division up to the square root of n.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}

	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// WriteList writes the numbers space separated on a single line.
func WriteList(w io.Writer, numbers []int) error {
	for i, n := range numbers {
		sep := " "
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%d", sep, n); err != nil {
			return fmt.Errorf("failed to write primes: %w", err)
		}
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write primes: %w", err)
	}

	return nil
}

// WriteChecks writes one "n is prime" / "n is not prime" line per number.
func WriteChecks(w io.Writer, numbers []int) error {
	for _, n := range numbers {
		verdict := "is not prime"
		if IsPrime(n) {
			verdict = "is prime"
		}

		if _, err := fmt.Fprintf(w, "%d %s\n", n, verdict); err != nil {
			return fmt.Errorf("failed to write result for %d: %w", n, err)
		}
	}

	return nil
}
