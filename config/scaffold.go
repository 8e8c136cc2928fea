package config

// ScaffoldTOML is the starter config written by `genkan init`. It decodes
// strictly against Config and passes Validate as-is.
const ScaffoldTOML = `# Genkan configuration.
# This file controls your link page content and appearance.

[profile]
name = "Your Name"
bio = "Welcome to my link page!"

[profile.light]
# Avatar can be a URL or a local path (relative to this file).
avatar = "https://via.placeholder.com/150"
# Optional: background color or gradient.
# background = "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"

[theme]
# Built-in themes: simple. Custom themes live under themes/<name>/.
name = "simple"
# Button style: rounded, pill, square.
button_style = "rounded"
# Font family.
font_family = "system-ui, -apple-system, sans-serif"
# Spacing between link buttons.
link_spacing = "24px"

[theme.light]
# Primary color for buttons and accents.
primary_color = "#000000"
# Secondary color for accents.
secondary_color = "#000000"
# Page background color.
background_color = "#ffffff"

[meta]
title = "My Links"
description = "All my important links in one place"
# Optional: favicon (URL or local path like "./favicon.ico").
favicon = ""
# Optional: page URL; also drives the share QR code.
# page_url = "https://links.example.com"
# Optional: custom CSS appended after the theme styles.
custom_css = ""
# Optional: analytics snippet (Google Analytics, Plausible, etc.).
analytics = ""

# Define your links here.
# Each link can have: title, url (optional), icon (optional), description (optional).
# link_type: "block" (default) or "space" (for spacing).
# Omit url for non-clickable text blocks, omit icon for text-only.
[[links]]
title = "My Website"
url = "https://example.com"
icon = "🌐"
description = "Check out my personal website"

[[links]]
title = "GitHub"
url = "https://github.com/username"
icon = "https://cdn.simpleicons.org/github/000000"

# Example: spacer (creates vertical space).
# [[links]]
# link_type = "space"
# height = "30px"

[[links]]
title = "Twitter"
url = "https://twitter.com/username"
icon = "🐦"
`
