package mysql

import "strings"

const upsertAgentSQL = `
INSERT INTO agents
  (id, name, slug, title, image, bio, email, phone, specialties, experience, social_media, source_updated_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name              = VALUES(name),
  slug              = VALUES(slug),
  title             = VALUES(title),
  image             = VALUES(image),
  bio               = VALUES(bio),
  email             = VALUES(email),
  phone             = VALUES(phone),
  specialties       = VALUES(specialties),
  experience        = VALUES(experience),
  social_media      = VALUES(social_media),
  source_updated_at = VALUES(source_updated_at),
  updated_at        = CURRENT_TIMESTAMP
`

const upsertPropertySQL = `
INSERT INTO properties
  (id, title, slug, property_type, status, price, currency, featured, main_image, gallery,
   description, address, specifications, amenities, agent_id, published_at, created_at, source_updated_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  title             = VALUES(title),
  slug              = VALUES(slug),
  property_type     = VALUES(property_type),
  status            = VALUES(status),
  price             = VALUES(price),
  currency          = VALUES(currency),
  featured          = VALUES(featured),
  main_image        = VALUES(main_image),
  gallery           = VALUES(gallery),
  description       = VALUES(description),
  address           = VALUES(address),
  specifications    = VALUES(specifications),
  amenities         = VALUES(amenities),
  agent_id          = VALUES(agent_id),
  published_at      = VALUES(published_at),
  created_at        = COALESCE(VALUES(created_at), properties.created_at),
  source_updated_at = VALUES(source_updated_at),
  updated_at        = CURRENT_TIMESTAMP
`

const upsertTestimonialSQL = `
INSERT INTO testimonials
  (id, name, role, image, content, rating, property_id, featured, published_at, source_updated_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name              = VALUES(name),
  role              = VALUES(role),
  image             = VALUES(image),
  content           = VALUES(content),
  rating            = VALUES(rating),
  property_id       = VALUES(property_id),
  featured          = VALUES(featured),
  published_at      = VALUES(published_at),
  source_updated_at = VALUES(source_updated_at),
  updated_at        = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// Every property read selects the same columns; the agent columns come from a
// LEFT JOIN and are NULL when the reference is unset or dangling. Per-query
// projection happens in the repo after the scan.
const propertyColumns = `
  p.id,
  p.created_at,
  p.title,
  p.slug,
  p.property_type,
  p.status,
  p.price,
  p.currency,
  p.featured,
  p.main_image,
  p.gallery,
  p.description,
  p.address,
  p.specifications,
  p.amenities,
  p.published_at,
  a.id,
  a.name,
  a.slug,
  a.title,
  a.image,
  a.bio,
  a.email,
  a.phone
FROM properties p
LEFT JOIN agents a ON a.id = p.agent_id
`

// MySQL sorts NULL last under DESC, so undated listings trail.
const listPropertiesSQL = `SELECT` + propertyColumns + `
ORDER BY p.published_at DESC, p.id
`

const featuredPropertiesSQL = `SELECT` + propertyColumns + `
WHERE p.featured = 1
ORDER BY p.published_at DESC, p.id
LIMIT ?
`

const propertyBySlugSQL = `SELECT` + propertyColumns + `
WHERE p.slug = ?
LIMIT 1
`

const propertySlugsSQL = `
SELECT slug
FROM properties
WHERE slug IS NOT NULL AND slug <> ''
ORDER BY slug
`

const listAgentsSQL = `
SELECT id, name, slug, title, image, bio, email, phone, specialties, experience, social_media
FROM agents
ORDER BY name ASC, id
`

const featuredTestimonialsSQL = `
SELECT
  t.id,
  t.name,
  t.role,
  t.image,
  t.content,
  t.rating,
  p.title,
  p.slug
FROM testimonials t
LEFT JOIN properties p ON p.id = t.property_id
WHERE t.featured = 1
ORDER BY t.published_at DESC, t.id
LIMIT ?
`

// pruneTarget names the table behind a document kind and the column read
// back as the removed row's slug.
type pruneTarget struct {
	table   string
	slugCol string
}

var pruneTargets = map[string]pruneTarget{
	"agent":       {"agents", "slug"},
	"property":    {"properties", "slug"},
	"testimonial": {"testimonials", "NULL"},
}

// pruneSQL builds the select and delete for rows outside n kept ids. With no
// ids every row of the table goes.
func pruneSQL(t pruneTarget, n int) (sel, del string) {
	where := ""
	if n > 0 {
		where = " WHERE id NOT IN (?" + strings.Repeat(",?", n-1) + ")"
	}
	sel = "SELECT id, " + t.slugCol + " FROM " + t.table + where + " FOR UPDATE"
	del = "DELETE FROM " + t.table + where
	return sel, del
}
