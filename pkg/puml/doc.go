// Package puml renders a package tree and its relationships as a PlantUML
// class diagram.
//
// # Output
//
// [Render] writes a complete document: a fixed preamble of skinparam
// directives, one nested "package" block per package with its sub-packages
// and classes, one relationship line per edge, and the closing @enduml:
//
//	@startuml
//	...
//	package "shop" {
//	  skinparam packageBackgroundColor #264073
//	  skinparam packageBorderColor Black
//	  class "Order" as shop_Order {
//	    id: int
//	    +total(): Decimal
//	  }
//	}
//	shop_Order --> shop_Customer : customer
//	@enduml
//
// The synthetic root package is never opened as a block.
//
// # Colors
//
// Each package gets a background color from its depth, see [Palette]. With
// the default palette top-level packages are dark blue and every level gets
// lighter until the lightness cap is reached at depth 3.
//
// # Aliases
//
// Classes are referenced by [Alias], the ID with dots replaced by
// underscores. Distinct IDs such as "a.b" and "a_b" share an alias and would
// merge in PlantUML; [Collisions] reports them so callers can warn. The
// rendered text is not changed.
package puml
