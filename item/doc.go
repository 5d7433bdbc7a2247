// Package item defines the two identity tokens the rest of this module
// treats as opaque: Item (one concrete choice, e.g. "blue shirt") and Family
// (a category of mutually exclusive items, e.g. "shirts").
//
// Both types satisfy the same small capability contract — equality, a total
// order, and a stable textual form — and nothing more. Neither type carries
// behavior beyond identity: the decision-diagram engine in diagram, boolean,
// closet and outfit never inspects an Item or Family beyond comparing and
// printing it.
//
// Item and Family are plain values (a single unexported string field each),
// so copying one clones it for free; there is no constructor-side state to
// share or protect.
package item
