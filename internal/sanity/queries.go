package sanity

// imageProjection dereferences the asset so callers get a usable URL
// without the image-URL builder.
const imageProjection = `{alt, caption, asset, "url": asset->url}`

const seoProjection = `seo{title, description, keywords, ogImage` + imageProjection + `}`

// LatestWindow is the number of entries LatestProjectsQuery returns.
const LatestWindow = 6

// ProjectsQuery lists every project, newest first.
const ProjectsQuery = `
  *[_type == "project"] | order(_createdAt desc) {
    _id,
    _createdAt,
    title,
    slug,
    "location": location->{name, slug},
    category,
    featuredImage` + imageProjection + `,
    description,
    completionDate,
    ` + seoProjection + `
  }
`

// ProjectQuery fetches one project by $slug, with gallery and client details.
const ProjectQuery = `
  *[_type == "project" && slug.current == $slug][0] {
    _id,
    _createdAt,
    title,
    slug,
    "location": location->{name, slug},
    category,
    featuredImage` + imageProjection + `,
    gallery[]` + imageProjection + `,
    description,
    completionDate,
    client,
    projectDetails,
    ` + seoProjection + `
  }
`

// ProjectsByCityQuery lists the projects located in the city with slug $city.
const ProjectsByCityQuery = `
  *[_type == "project" && location->slug.current == $city] | order(_createdAt desc) {
    _id,
    _createdAt,
    title,
    slug,
    "location": location->{name, slug},
    category,
    featuredImage` + imageProjection + `,
    description,
    completionDate
  }
`

// LatestProjectsQuery returns the LatestWindow newest projects for the homepage.
const LatestProjectsQuery = `
  *[_type == "project"] | order(_createdAt desc) [0...6] {
    _id,
    _createdAt,
    title,
    slug,
    "location": location->{name, slug},
    category,
    featuredImage` + imageProjection + `,
    completionDate
  }
`

// ProjectSlugsQuery enumerates slugs for sitemap and static page generation.
const ProjectSlugsQuery = `
  *[_type == "project" && defined(slug.current)] | order(_createdAt desc) {
    "slug": slug.current
  }
`

// CitiesQuery lists every city alphabetically.
const CitiesQuery = `
  *[_type == "city"] | order(name asc) {
    _id,
    name,
    slug,
    heroImage` + imageProjection + `,
    description,
    testimonials,
    ` + seoProjection + `
  }
`

// CityQuery fetches one city by $slug with its six newest projects.
const CityQuery = `
  *[_type == "city" && slug.current == $slug][0] {
    _id,
    name,
    slug,
    heroImage` + imageProjection + `,
    description,
    testimonials,
    ` + seoProjection + `,
    "projects": *[_type == "project" && location._ref == ^._id] | order(_createdAt desc) [0...6] {
      _id,
      title,
      slug,
      featuredImage` + imageProjection + `,
      category
    }
  }
`
